package domain

// SpriteCoord - координата спрайта на листе (в тайлах, не в пикселях)
type SpriteCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InteractableMarker - маркер интерактивного объекта (сундуки и т.п.).
// Пустая структура: сами спрайты состояний лежат в GameObject.Sprites[0] и [1].
type InteractableMarker struct{}

// GameObject - определение игрового контента (тайл, персонаж, предмет...).
// Опциональность полей структурная: nil-указатель означает "поле отсутствует",
// и именно это отличие видит ValidationEngine. Walkable - указатель сознательно:
// исторически поле обязательно для ВСЕХ типов, не только для тайлов.
type GameObject struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ObjectType string `json:"object_type"`
	Walkable   *bool  `json:"walkable,omitempty"`

	// Боевые характеристики (character, item)
	Health              *int  `json:"health,omitempty"`
	Attack              *int  `json:"attack,omitempty"`
	Defense             *int  `json:"defense,omitempty"`
	AttackSpreadPercent *int  `json:"attack_spread_percent,omitempty"`
	CritChancePercent   *int  `json:"crit_chance_percent,omitempty"`
	CritDamagePercent   *int  `json:"crit_damage_percent,omitempty"`
	Monster             *bool `json:"monster,omitempty"`

	// Для расходников
	HealingPower *int `json:"healing_power,omitempty"`

	// Порядок важен: для интерактивных объектов Sprites[0] = состояние "до",
	// Sprites[1] = состояние "после". nil означает, что поле отсутствовало в документе.
	Sprites      []SpriteCoord       `json:"sprites"`
	Interactable *InteractableMarker `json:"interactable,omitempty"`

	// Устаревший формат одиночной координаты. Поддерживаем при чтении,
	// AutoFix конвертирует в Sprites.
	SpriteX *int `json:"sprite_x,omitempty"`
	SpriteY *int `json:"sprite_y,omitempty"`

	SpriteSheet string `json:"sprite_sheet,omitempty"`

	// Произвольные свойства (строка-строка), используются редактором
	Properties map[string]string `json:"properties,omitempty"`
}

// Clone возвращает глубокую копию объекта. Читатели получают снимок,
// не связанный с живым состоянием стора: последующие мутации оригинала
// (авто-ремонт, правки) копию не трогают.
func (o *GameObject) Clone() *GameObject {
	if o == nil {
		return nil
	}
	c := *o
	c.Walkable = copyBool(o.Walkable)
	c.Health = copyInt(o.Health)
	c.Attack = copyInt(o.Attack)
	c.Defense = copyInt(o.Defense)
	c.AttackSpreadPercent = copyInt(o.AttackSpreadPercent)
	c.CritChancePercent = copyInt(o.CritChancePercent)
	c.CritDamagePercent = copyInt(o.CritDamagePercent)
	c.Monster = copyBool(o.Monster)
	c.HealingPower = copyInt(o.HealingPower)
	c.SpriteX = copyInt(o.SpriteX)
	c.SpriteY = copyInt(o.SpriteY)
	if o.Interactable != nil {
		c.Interactable = &InteractableMarker{}
	}
	// Различие nil/пустой массив сохраняется: make дает непустой nil-безопасный срез
	if o.Sprites != nil {
		c.Sprites = make([]SpriteCoord, len(o.Sprites))
		copy(c.Sprites, o.Sprites)
	}
	if o.Properties != nil {
		c.Properties = make(map[string]string, len(o.Properties))
		for k, v := range o.Properties {
			c.Properties[k] = v
		}
	}
	return &c
}

func copyBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// SpritesOrLegacy возвращает массив спрайтов объекта.
// Если массива нет, но есть устаревшие sprite_x/sprite_y - синтезирует из них.
func (o *GameObject) SpritesOrLegacy() []SpriteCoord {
	if len(o.Sprites) > 0 {
		return o.Sprites
	}
	if o.SpriteX != nil && o.SpriteY != nil {
		return []SpriteCoord{{X: *o.SpriteX, Y: *o.SpriteY}}
	}
	return nil
}

// FirstSprite возвращает первый спрайт объекта (основной для отрисовки).
func (o *GameObject) FirstSprite() (SpriteCoord, bool) {
	sprites := o.SpritesOrLegacy()
	if len(sprites) == 0 {
		return SpriteCoord{}, false
	}
	return sprites[0], true
}

// Sheet возвращает лист спрайтов объекта с учетом дефолта.
func (o *GameObject) Sheet() string {
	if o.SpriteSheet != "" {
		return o.SpriteSheet
	}
	return DefaultSpriteSheet
}

// IsWalkable возвращает walkable, считая отсутствующее поле за false.
func (o *GameObject) IsWalkable() bool {
	return o.Walkable != nil && *o.Walkable
}

// IsMonster - персонаж с флагом monster=true.
// Флаг может лежать и в properties (старые документы).
func (o *GameObject) IsMonster() bool {
	if o.ObjectType != ObjectTypeCharacter {
		return false
	}
	if o.Monster != nil {
		return *o.Monster
	}
	return o.Properties["monster"] == "true"
}

// IsInteractable - объект с двумя состояниями (сундук).
// Проверяем и маркер, и тип - для надежности со старым контентом.
func (o *GameObject) IsInteractable() bool {
	return o.Interactable != nil || o.ObjectType == ObjectTypeChest
}

// StateSprite возвращает спрайт состояния интерактивного объекта:
// after=false - состояние "до" (Sprites[0]), after=true - "после" (Sprites[1],
// с откатом на Sprites[0], если второго спрайта нет).
func (o *GameObject) StateSprite(after bool) (SpriteCoord, bool) {
	sprites := o.SpritesOrLegacy()
	if !o.IsInteractable() || len(sprites) == 0 {
		return o.FirstSprite()
	}
	if after && len(sprites) > 1 {
		return sprites[1], true
	}
	return sprites[0], true
}

// StateWalkable: интерактивный объект до взаимодействия непроходим,
// после - проходим. Для прочих объектов возвращает базовый walkable.
func (o *GameObject) StateWalkable(after bool) bool {
	if o.IsInteractable() {
		return after
	}
	return o.IsWalkable()
}
