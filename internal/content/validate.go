package content

import (
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

// DefaultHealingPower - значение, которое AutoFix подставляет расходникам
// без healing_power.
const DefaultHealingPower = 20

// Issue - один объект с недостающими обязательными полями.
// Валидация отчитывается данными, а не ошибками: вызывающая сторона
// показывает список оператору.
type Issue struct {
	ObjectID      string   `json:"object_id"`
	ObjectName    string   `json:"object_name"`
	MissingFields []string `json:"missing_fields"`
}

// LevelIssue - совещательная проверка ссылочной целостности уровня:
// id из allowed_monsters, которые не разрешаются в персонажа-монстра.
type LevelIssue struct {
	LevelNumber int      `json:"level_number"`
	BadMonsters []string `json:"bad_monsters"`
}

// FixResult - результат авто-ремонта
type FixResult struct {
	FixedCount      int     `json:"fixed_count"`
	RemainingIssues []Issue `json:"remaining_issues"`
}

// Engine проверяет стор против правил обязательных полей и применяет
// детерминированную политику авто-ремонта.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Validate проверяет каждый объект стора.
//
// Сначала плоский список всегда обязательных полей: id, name, object_type,
// walkable и sprites. Walkable обязателен для ЛЮБОГО типа, хотя по смыслу
// нужен только тайлам - это историческое поведение, сохраняем буквально.
// Затем типо-зависимые поля: у consumable обязателен healing_power.
func (e *Engine) Validate(st *Store) []Issue {
	var issues []Issue

	for _, obj := range st.All() {
		var missing []string

		if obj.ID == "" {
			missing = append(missing, "id")
		}
		if obj.Name == "" {
			missing = append(missing, "name")
		}
		if obj.ObjectType == "" {
			missing = append(missing, "object_type")
		}
		if obj.Walkable == nil {
			missing = append(missing, "walkable")
		}
		if obj.Sprites == nil {
			missing = append(missing, "sprites")
		}

		if obj.ObjectType == domain.ObjectTypeConsumable && obj.HealingPower == nil {
			missing = append(missing, "healing_power")
		}

		if len(missing) > 0 {
			issues = append(issues, Issue{
				ObjectID:      obj.ID,
				ObjectName:    obj.Name,
				MissingFields: missing,
			})
		}
	}

	return issues
}

// AutoFix применяет детерминированные, типо-зависимые дефолты:
//   - sprites отсутствуют: пустой массив, либо синтез из legacy sprite_x/sprite_y;
//   - healing_power отсутствует у consumable: DefaultHealingPower.
//
// Поля идентичности (id, name, object_type) и walkable никогда не выдумываются,
// они остаются оператору. Повторный запуск ничего не меняет: оставшиеся
// проблемы вычисляются свежим Validate.
func (e *Engine) AutoFix(st *Store, issues []Issue) FixResult {
	fixed := 0

	for _, issue := range issues {
		obj := st.Find(issue.ObjectID)
		if obj == nil {
			continue
		}

		for _, field := range issue.MissingFields {
			switch field {
			case "sprites":
				if obj.Sprites != nil {
					continue
				}
				if legacy := obj.SpritesOrLegacy(); legacy != nil {
					obj.Sprites = legacy
					logger.Log.WithField("object_id", obj.ID).
						Debug("AutoFix: synthesized sprites from legacy sprite_x/sprite_y")
				} else {
					obj.Sprites = []domain.SpriteCoord{}
				}
				fixed++
			case "healing_power":
				if obj.ObjectType != domain.ObjectTypeConsumable || obj.HealingPower != nil {
					continue
				}
				obj.HealingPower = domain.Int(DefaultHealingPower)
				fixed++
			}
		}
	}

	return FixResult{
		FixedCount:      fixed,
		RemainingIssues: e.Validate(st),
	}
}

// ValidateLevels - совещательная проверка: каждый id из allowed_monsters
// должен разрешаться в character с monster=true. Сохранение она не блокирует.
func (e *Engine) ValidateLevels(st *Store) []LevelIssue {
	var issues []LevelIssue

	for _, lvl := range st.Levels() {
		var bad []string
		for _, id := range lvl.AllowedMonsters {
			obj := st.Find(id)
			if obj == nil || !obj.IsMonster() {
				bad = append(bad, id)
			}
		}
		if len(bad) > 0 {
			issues = append(issues, LevelIssue{
				LevelNumber: lvl.LevelNumber,
				BadMonsters: bad,
			})
		}
	}

	return issues
}
