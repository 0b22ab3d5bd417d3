package domain

import "fmt"

// Level - параметры процедурной генерации одного этажа подземелья.
// Сама генерация живет в игровом сервере, мы владеем только параметрами.
type Level struct {
	LevelNumber        int      `json:"level_number"`
	MinRooms           int      `json:"min_rooms"`
	MaxRooms           int      `json:"max_rooms"`
	MinMonstersPerRoom int      `json:"min_monsters_per_room"`
	MaxMonstersPerRoom int      `json:"max_monsters_per_room"`
	ChestCount         int      `json:"chest_count"`
	AllowedMonsters    []string `json:"allowed_monsters"`
}

// Clone возвращает глубокую копию уровня.
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}
	c := *l
	if l.AllowedMonsters != nil {
		c.AllowedMonsters = make([]string, len(l.AllowedMonsters))
		copy(c.AllowedMonsters, l.AllowedMonsters)
	}
	return &c
}

// CheckBounds проверяет инварианты уровня перед записью в стор.
// Ссылочная целостность AllowedMonsters здесь НЕ проверяется - это
// совещательная проверка ValidationEngine.
func (l *Level) CheckBounds() error {
	if l.LevelNumber <= 0 {
		return fmt.Errorf("level_number must be positive, got %d", l.LevelNumber)
	}
	if l.MinRooms > l.MaxRooms {
		return fmt.Errorf("level %d: min_rooms %d > max_rooms %d", l.LevelNumber, l.MinRooms, l.MaxRooms)
	}
	if l.MinMonstersPerRoom > l.MaxMonstersPerRoom {
		return fmt.Errorf("level %d: min_monsters_per_room %d > max_monsters_per_room %d",
			l.LevelNumber, l.MinMonstersPerRoom, l.MaxMonstersPerRoom)
	}
	if l.ChestCount < 0 {
		return fmt.Errorf("level %d: chest_count must be >= 0, got %d", l.LevelNumber, l.ChestCount)
	}
	return nil
}
