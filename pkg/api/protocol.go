package api

// --- ИГРОВОЙ СЕРВЕР -> РЕДАКТОР ---

// Контроллер сущности в снапшоте
const (
	ControllerPlayer = "Player"
	ControllerAI     = "AI"
)

// TileDescriptor - абстрактный тайл, который отдает генератор карт.
// Ссылок на контент тут нет: только флаг проходимости и координата спрайта.
// Конкретный GameObject подбирает резолвер.
type TileDescriptor struct {
	SpriteX  int  `json:"sprite_x"`
	SpriteY  int  `json:"sprite_y"`
	Walkable bool `json:"walkable"`
}

// EntityPlacement - размещение сущности на сгенерированной карте.
// Спрайт и лист могут переопределять данные объекта (если сервер их прислал).
type EntityPlacement struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	ObjectID    string `json:"object_id"`
	SpriteX     *int   `json:"sprite_x,omitempty"`
	SpriteY     *int   `json:"sprite_y,omitempty"`
	SpriteSheet string `json:"sprite_sheet,omitempty"`
	Controller  string `json:"controller"`
}

// MapSnapshot - один сгенерированный игровым сервером лэйаут подземелья.
// Мы его потребляем целиком: либо полный корректный снапшот, либо явная
// ошибка загрузки - частичной обработки не бывает.
type MapSnapshot struct {
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	Map      [][]TileDescriptor `json:"map"`
	Entities []EntityPlacement  `json:"entities"`
	// Позиция лестницы (цели уровня), [x, y]. null = цели нет.
	StairsPosition *[2]int `json:"stairs_position"`
}

// --- РЕДАКТОР -> ПОДПИСЧИКИ (WebSocket) ---

// Типы событий контента
const (
	EventObjectsChanged = "OBJECTS_CHANGED"
	EventLevelsChanged  = "LEVELS_CHANGED"
	EventReloaded       = "RELOADED"
	EventSaved          = "SAVED"
)

// ContentEvent - уведомление об изменении канонического контента.
// Подписчик сам решает, что перезапросить.
type ContentEvent struct {
	Type string `json:"type"`

	// ID затронутого объекта (для OBJECTS_CHANGED)
	ObjectID string `json:"object_id,omitempty"`

	// Номер затронутого уровня (для LEVELS_CHANGED)
	Level int `json:"level,omitempty"`

	// Количество открытых проблем валидации после изменения
	Issues int `json:"issues"`
}
