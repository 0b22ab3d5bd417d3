package schema

func strptr(s string) *string { return &s }

// Default возвращает зашитую в код схему - последний рубеж, когда ни кеш,
// ни игровой сервер недоступны. Таблица должна побайтово совпадать с той,
// что генерирует сервер: порядок полей определяет порядок форм и дефолтов.
func Default() *Schema {
	statTypes := []string{"character", "item"}

	return &Schema{Fields: []Field{
		{
			Name:      "id",
			FieldType: "String",
			Label:     "ID",
		},
		{
			Name:      "name",
			FieldType: "String",
			Label:     "Name",
		},
		{
			Name:      "object_type",
			FieldType: "String",
			Label:     "Type",
		},
		{
			Name:         "walkable",
			FieldType:    "bool",
			Default:      strptr("false"),
			ShowForTypes: []string{"tile"},
			Label:        "Walkable",
		},
		{
			Name:         "health",
			FieldType:    "Option<u32>",
			Optional:     true,
			ShowForTypes: statTypes,
			Label:        "Health",
		},
		{
			Name:         "attack",
			FieldType:    "Option<i32>",
			Optional:     true,
			ShowForTypes: statTypes,
			Label:        "Attack",
		},
		{
			Name:         "defense",
			FieldType:    "Option<i32>",
			Optional:     true,
			ShowForTypes: statTypes,
			Label:        "Defense",
		},
		{
			Name:         "attack_spread_percent",
			FieldType:    "Option<u32>",
			Optional:     true,
			Default:      strptr("20"),
			ShowForTypes: statTypes,
			Label:        "Attack Spread %",
		},
		{
			Name:         "crit_chance_percent",
			FieldType:    "Option<u32>",
			Optional:     true,
			Default:      strptr("0"),
			ShowForTypes: statTypes,
			Label:        "Crit Chance %",
		},
		{
			Name:         "crit_damage_percent",
			FieldType:    "Option<u32>",
			Optional:     true,
			Default:      strptr("150"),
			ShowForTypes: statTypes,
			Label:        "Crit Damage %",
		},
		{
			Name:         "monster",
			FieldType:    "Option<bool>",
			Optional:     true,
			Default:      strptr("false"),
			ShowForTypes: []string{"character"},
			Label:        "Monster",
		},
		{
			Name:         "healing_power",
			FieldType:    "Option<u32>",
			Optional:     true,
			ShowForTypes: []string{"consumable"},
			Label:        "Healing Power",
		},
		{
			Name:      "sprites",
			FieldType: "Vec<SpriteCoord>",
			Default:   strptr("[]"),
			Label:     "Sprites (Default, or 'before' for interactables)",
		},
		{
			Name:         "interactable",
			FieldType:    "Option<InteractableData>",
			Optional:     true,
			Default:      strptr("None"),
			ShowForTypes: []string{"chest"},
			Label:        "Interactable (before/after states)",
		},
		{
			Name:      "sprite_sheet",
			FieldType: "Option<String>",
			Optional:  true,
			Label:     "Sprite Sheet",
		},
		// Устаревшие одиночные координаты - скрыты, но поддерживаются
		{
			Name:      "sprite_x",
			FieldType: "Option<u32>",
			Optional:  true,
		},
		{
			Name:      "sprite_y",
			FieldType: "Option<u32>",
			Optional:  true,
		},
	}}
}
