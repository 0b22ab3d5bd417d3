package domain

// Типы игровых объектов
const (
	ObjectTypeTile       = "tile"
	ObjectTypeCharacter  = "character"
	ObjectTypeItem       = "item"
	ObjectTypeConsumable = "consumable"
	ObjectTypeGoal       = "goal"
	ObjectTypeChest      = "chest"
)

// DefaultSpriteSheet - лист спрайтов по умолчанию.
// Объект без sprite_sheet рисуется из этого листа.
const DefaultSpriteSheet = "tiles.png"

// TileSize - размер одного тайла в пикселях (в масштабе 1.0)
const TileSize = 32

// Bool возвращает указатель на значение. Удобно для литералов контента.
func Bool(v bool) *bool { return &v }

// Int возвращает указатель на значение.
func Int(v int) *int { return &v }
