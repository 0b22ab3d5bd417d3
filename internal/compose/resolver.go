package compose

import (
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/content"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/api"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

// DefaultFallbackTileID - последний рубеж резолвера в дефолтном контенте.
// Это настройка, а не истина: контент может переопределить.
const DefaultFallbackTileID = "wall_dirt_top"

// Resolver отображает абстрактный дескриптор тайла от генератора карт
// в id конкретного GameObject из стора.
//
// Порядок деградации строгий и меняться не должен: точное совпадение
// (walkable + спрайт) -> совпадение только по walkable -> FallbackID.
// Резолвер никогда не ошибается - в худшем случае жертвует точностью
// спрайта ради корректной проходимости.
type Resolver struct {
	FallbackID string

	// Счетчик использований последнего рубежа - для диагностики,
	// наружу не бросается.
	fallbacks int
}

func NewResolver() *Resolver {
	return &Resolver{FallbackID: DefaultFallbackTileID}
}

// Resolve возвращает id тайла для дескриптора. Перебор объектов идет
// в порядке вставки в стор - первый подошедший побеждает.
func (r *Resolver) Resolve(d api.TileDescriptor, st *content.Store) string {
	// 1. Точное совпадение: walkable и координата спрайта
	for _, obj := range st.All() {
		if obj.ObjectType != domain.ObjectTypeTile {
			continue
		}
		if obj.Walkable == nil || *obj.Walkable != d.Walkable {
			continue
		}
		for _, sp := range obj.SpritesOrLegacy() {
			if sp.X == d.SpriteX && sp.Y == d.SpriteY {
				return obj.ID
			}
		}
	}

	// 2. Совпадение только по walkable, спрайт игнорируем
	for _, obj := range st.All() {
		if obj.ObjectType != domain.ObjectTypeTile {
			continue
		}
		if obj.Walkable != nil && *obj.Walkable == d.Walkable {
			return obj.ID
		}
	}

	// 3. Последний рубеж
	r.fallbacks++
	logger.Log.WithField("sprite_x", d.SpriteX).
		WithField("sprite_y", d.SpriteY).
		WithField("walkable", d.Walkable).
		Debug("Tile resolver hit ultimate fallback")
	return r.FallbackID
}

// FallbackCount возвращает, сколько раз резолвер дошел до последнего рубежа.
func (r *Resolver) FallbackCount() int {
	return r.fallbacks
}
