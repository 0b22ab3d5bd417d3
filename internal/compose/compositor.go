package compose

import (
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/content"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/api"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

// Слои отрисовки, от заднего к переднему
const (
	LayerTile   = "tile"
	LayerEntity = "entity"
	LayerGoal   = "goal"
)

// Стили рамки вокруг клетки
const (
	BorderNone          = "none"
	BorderPlayer        = "player-highlight"
	BorderGoalHighlight = "goal-highlight"
)

// PixelRect - прямоугольник в пикселях: cell * TileSize * zoom.
// Zoom не ограничивается - клампинг это забота презентации.
type PixelRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// RenderPlacement - одна декларативная инструкция "нарисуй этот контент
// в этой клетке". Создается заново на каждый вызов Composite и никогда
// не мутируется.
type RenderPlacement struct {
	Layer       string             `json:"layer"`
	CellX       int                `json:"cell_x"`
	CellY       int                `json:"cell_y"`
	ObjectID    string             `json:"object_id,omitempty"`
	Sprite      domain.SpriteCoord `json:"sprite"`
	SpriteSheet string             `json:"sprite_sheet"`
	BorderStyle string             `json:"border_style"`
	// Placeholder: у объекта нет спрайтов, рендерер рисует плоскую заливку
	Placeholder bool      `json:"placeholder,omitempty"`
	PixelRect   PixelRect `json:"pixel_rect"`
}

// Compositor превращает сырой снапшот генерации в упорядоченный послойный
// список размещений. Чистое вычисление над стором, без точек блокировки.
type Compositor struct {
	Resolver *Resolver
	TileSize int
}

func NewCompositor(r *Resolver) *Compositor {
	return &Compositor{
		Resolver: r,
		TileSize: domain.TileSize,
	}
}

// Composite строит список размещений. Порядок слоев фиксирован:
// тайлы, затем сущности, затем цель уровня.
func (c *Compositor) Composite(snap *api.MapSnapshot, st *content.Store, zoom float64) []RenderPlacement {
	// Емкость: сетка + сущности + возможная цель
	placements := make([]RenderPlacement, 0, snap.Width*snap.Height+len(snap.Entities)+1)

	placements = append(placements, c.tileLayer(snap, st, zoom)...)
	placements = append(placements, c.entityLayer(snap, st, zoom)...)
	if goal := c.goalLayer(snap, st, zoom); goal != nil {
		placements = append(placements, *goal)
	}

	return placements
}

// tileLayer: каждую клетку разрешаем в объект и берем его первый спрайт.
// Объект без спрайтов не роняет композицию - выходит заглушкой.
func (c *Compositor) tileLayer(snap *api.MapSnapshot, st *content.Store, zoom float64) []RenderPlacement {
	out := make([]RenderPlacement, 0, snap.Width*snap.Height)

	for y, row := range snap.Map {
		for x, d := range row {
			id := c.Resolver.Resolve(d, st)
			p := RenderPlacement{
				Layer:       LayerTile,
				CellX:       x,
				CellY:       y,
				ObjectID:    id,
				SpriteSheet: domain.DefaultSpriteSheet,
				BorderStyle: BorderNone,
				PixelRect:   c.pixelRect(x, y, zoom),
			}
			if obj := st.Find(id); obj != nil {
				p.SpriteSheet = obj.Sheet()
				if sprite, ok := obj.FirstSprite(); ok {
					p.Sprite = sprite
				} else {
					p.Placeholder = true
				}
			} else {
				// Fallback id вне стора - рисуем заглушку, но не падаем
				p.Placeholder = true
			}
			out = append(out, p)
		}
	}

	return out
}

// entityLayer: сущности с неизвестным object_id молча пропускаются.
// Политика мягкая, но с потерями - неизвестная сущность просто не рисуется.
func (c *Compositor) entityLayer(snap *api.MapSnapshot, st *content.Store, zoom float64) []RenderPlacement {
	var out []RenderPlacement

	for _, e := range snap.Entities {
		obj := st.Find(e.ObjectID)
		if obj == nil {
			logger.Log.WithField("object_id", e.ObjectID).
				Debug("Snapshot entity references unknown object, skipping")
			continue
		}

		p := RenderPlacement{
			Layer:       LayerEntity,
			CellX:       e.X,
			CellY:       e.Y,
			ObjectID:    obj.ID,
			SpriteSheet: obj.Sheet(),
			BorderStyle: BorderNone,
			PixelRect:   c.pixelRect(e.X, e.Y, zoom),
		}

		if sprite, ok := obj.FirstSprite(); ok {
			p.Sprite = sprite
		} else {
			p.Placeholder = true
		}
		// Переопределение от снапшота побеждает данные объекта
		if e.SpriteX != nil && e.SpriteY != nil {
			p.Sprite = domain.SpriteCoord{X: *e.SpriteX, Y: *e.SpriteY}
			p.Placeholder = false
		}
		if e.SpriteSheet != "" {
			p.SpriteSheet = e.SpriteSheet
		}

		// Рамку получает только игрок. Монстры не выделяются - это
		// осознанная асимметрия, не баг.
		if e.Controller == api.ControllerPlayer {
			p.BorderStyle = BorderPlayer
		}

		out = append(out, p)
	}

	return out
}

// goalLayer: клетка лестницы всегда остается визуально различимой.
// Объект цели ищем по object_type=="goal" (контракт id-агностичный);
// если его нет в сторе - заглушка с той же подсветкой.
func (c *Compositor) goalLayer(snap *api.MapSnapshot, st *content.Store, zoom float64) *RenderPlacement {
	if snap.StairsPosition == nil {
		return nil
	}
	x, y := snap.StairsPosition[0], snap.StairsPosition[1]

	p := RenderPlacement{
		Layer:       LayerGoal,
		CellX:       x,
		CellY:       y,
		SpriteSheet: domain.DefaultSpriteSheet,
		BorderStyle: BorderGoalHighlight,
		Placeholder: true,
		PixelRect:   c.pixelRect(x, y, zoom),
	}

	for _, obj := range st.All() {
		if obj.ObjectType != domain.ObjectTypeGoal {
			continue
		}
		p.ObjectID = obj.ID
		p.SpriteSheet = obj.Sheet()
		if sprite, ok := obj.FirstSprite(); ok {
			p.Sprite = sprite
			p.Placeholder = false
		}
		break
	}

	return &p
}

func (c *Compositor) pixelRect(x, y int, zoom float64) PixelRect {
	scaled := float64(c.TileSize) * zoom
	return PixelRect{
		X: float64(x) * scaled,
		Y: float64(y) * scaled,
		W: scaled,
		H: scaled,
	}
}
