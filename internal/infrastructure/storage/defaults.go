package storage

import "github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"

// DefaultDocument - стартовый набор контента, когда документа на диске
// еще нет. Повторяет дефолтный конфиг игрового сервера.
func DefaultDocument() *Document {
	return &Document{
		GameObjects: []*domain.GameObject{
			{
				ID:          "wall_dirt_top",
				Name:        "Dirt Wall (Top)",
				ObjectType:  domain.ObjectTypeTile,
				Walkable:    domain.Bool(false),
				Sprites:     []domain.SpriteCoord{{X: 0, Y: 0}},
				SpriteSheet: "tiles.png",
			},
			{
				ID:          "wall_dirt_side",
				Name:        "Dirt Wall (Side)",
				ObjectType:  domain.ObjectTypeTile,
				Walkable:    domain.Bool(false),
				Sprites:     []domain.SpriteCoord{{X: 1, Y: 0}},
				SpriteSheet: "tiles.png",
			},
			{
				ID:          "wall_stone_top",
				Name:        "Stone Wall (Top)",
				ObjectType:  domain.ObjectTypeTile,
				Walkable:    domain.Bool(false),
				Sprites:     []domain.SpriteCoord{{X: 0, Y: 1}},
				SpriteSheet: "tiles.png",
			},
			{
				ID:          "floor_dark",
				Name:        "Dark Floor",
				ObjectType:  domain.ObjectTypeTile,
				Walkable:    domain.Bool(true),
				Sprites:     []domain.SpriteCoord{{X: 0, Y: 6}},
				SpriteSheet: "tiles.png",
			},
			{
				ID:         "floor_stone",
				Name:       "Stone Floor",
				ObjectType: domain.ObjectTypeTile,
				Walkable:   domain.Bool(true),
				// Несколько вариантов спрайта для визуального разнообразия
				Sprites: []domain.SpriteCoord{
					{X: 1, Y: 6},
					{X: 2, Y: 6},
					{X: 3, Y: 6},
				},
				SpriteSheet: "tiles.png",
			},
			{
				ID:          "stairs",
				Name:        "Stairs Down",
				ObjectType:  domain.ObjectTypeGoal,
				Walkable:    domain.Bool(true),
				Sprites:     []domain.SpriteCoord{{X: 7, Y: 16}},
				SpriteSheet: "tiles.png",
			},
			{
				ID:          "player",
				Name:        "Player Character",
				ObjectType:  domain.ObjectTypeCharacter,
				Walkable:    domain.Bool(true),
				Health:      domain.Int(100),
				Attack:      domain.Int(10),
				Sprites:     []domain.SpriteCoord{{X: 0, Y: 0}},
				SpriteSheet: "rogues.png",
			},
			{
				ID:          "orc",
				Name:        "Orc",
				ObjectType:  domain.ObjectTypeCharacter,
				Walkable:    domain.Bool(true),
				Health:      domain.Int(50),
				Attack:      domain.Int(5),
				Monster:     domain.Bool(true),
				Sprites:     []domain.SpriteCoord{{X: 0, Y: 0}},
				SpriteSheet: "rogues.png",
			},
			{
				ID:           "health_potion",
				Name:         "Health Potion",
				ObjectType:   domain.ObjectTypeConsumable,
				Walkable:     domain.Bool(true),
				HealingPower: domain.Int(20),
				Sprites:      []domain.SpriteCoord{{X: 0, Y: 0}},
				SpriteSheet:  "tiles.png",
			},
		},
		Levels: []*domain.Level{
			{
				LevelNumber:        1,
				MinRooms:           8,
				MaxRooms:           12,
				MinMonstersPerRoom: 1,
				MaxMonstersPerRoom: 1,
				ChestCount:         1,
				AllowedMonsters:    []string{"orc"},
			},
		},
	}
}
