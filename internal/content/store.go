package content

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
)

// ErrDuplicateID - попытка добавить объект с уже занятым id
var ErrDuplicateID = errors.New("duplicate object id")

// ErrUnknownID - операция над объектом/уровнем, которого нет в сторе
var ErrUnknownID = errors.New("unknown id")

// Store - единственный владелец канонического состояния контента.
// Все мутации идут через методы, сохраняющие инварианты (уникальный id,
// sprites всегда присутствуют у добавленных объектов).
//
// Порядок вставки объектов сохраняется: он определяет tie-break резолвера
// тайлов и порядок списков в редакторе. Никакой защиты от конкурентного
// доступа тут нет - сериализация мутаций лежит на хосте (internal/server).
type Store struct {
	order   []string
	objects map[string]*domain.GameObject
	levels  map[int]*domain.Level
}

func NewStore() *Store {
	return &Store{
		objects: make(map[string]*domain.GameObject),
		levels:  make(map[int]*domain.Level),
	}
}

// FromDocument строит стор из загруженного документа как есть, без
// нормализации: валидация после загрузки обязана видеть сырое состояние.
// Дубликаты id - ошибка даже здесь.
func FromDocument(objects []*domain.GameObject, levels []*domain.Level) (*Store, error) {
	st := NewStore()
	for _, obj := range objects {
		if _, ok := st.objects[obj.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, obj.ID)
		}
		st.order = append(st.order, obj.ID)
		st.objects[obj.ID] = obj
	}
	for _, lvl := range levels {
		if _, ok := st.levels[lvl.LevelNumber]; ok {
			return nil, fmt.Errorf("%w: level %d", ErrDuplicateID, lvl.LevelNumber)
		}
		st.levels[lvl.LevelNumber] = lvl
	}
	return st, nil
}

// Add добавляет объект. Инвариант "sprites всегда последовательность"
// восстанавливается на входе: nil превращается в синтез из legacy-полей
// или в пустой массив.
func (s *Store) Add(obj *domain.GameObject) error {
	if _, ok := s.objects[obj.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, obj.ID)
	}
	if obj.Sprites == nil {
		if legacy := obj.SpritesOrLegacy(); legacy != nil {
			obj.Sprites = legacy
		} else {
			obj.Sprites = []domain.SpriteCoord{}
		}
	}
	s.order = append(s.order, obj.ID)
	s.objects[obj.ID] = obj
	return nil
}

// Update заменяет существующий объект, сохраняя его позицию в порядке вставки.
func (s *Store) Update(obj *domain.GameObject) error {
	if _, ok := s.objects[obj.ID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, obj.ID)
	}
	if obj.Sprites == nil {
		if legacy := obj.SpritesOrLegacy(); legacy != nil {
			obj.Sprites = legacy
		} else {
			obj.Sprites = []domain.SpriteCoord{}
		}
	}
	s.objects[obj.ID] = obj
	return nil
}

// Remove удаляет объект. Возвращает false, если объекта не было.
func (s *Store) Remove(id string) bool {
	if _, ok := s.objects[id]; !ok {
		return false
	}
	delete(s.objects, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Find возвращает объект по id или nil.
func (s *Store) Find(id string) *domain.GameObject {
	return s.objects[id]
}

// All возвращает объекты в порядке вставки.
func (s *Store) All() []*domain.GameObject {
	out := make([]*domain.GameObject, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.objects[id])
	}
	return out
}

func (s *Store) Len() int { return len(s.order) }

// MonsterCharacters возвращает всех персонажей-монстров (порядок вставки).
func (s *Store) MonsterCharacters() []*domain.GameObject {
	var out []*domain.GameObject
	for _, id := range s.order {
		if obj := s.objects[id]; obj.IsMonster() {
			out = append(out, obj)
		}
	}
	return out
}

// AddLevel добавляет уровень. Номер уровня уникален, границы проверяются.
func (s *Store) AddLevel(lvl *domain.Level) error {
	if err := lvl.CheckBounds(); err != nil {
		return err
	}
	if _, ok := s.levels[lvl.LevelNumber]; ok {
		return fmt.Errorf("%w: level %d", ErrDuplicateID, lvl.LevelNumber)
	}
	s.levels[lvl.LevelNumber] = lvl
	return nil
}

// UpdateLevel заменяет параметры существующего уровня.
func (s *Store) UpdateLevel(lvl *domain.Level) error {
	if err := lvl.CheckBounds(); err != nil {
		return err
	}
	if _, ok := s.levels[lvl.LevelNumber]; !ok {
		return fmt.Errorf("%w: level %d", ErrUnknownID, lvl.LevelNumber)
	}
	s.levels[lvl.LevelNumber] = lvl
	return nil
}

// RemoveLevel удаляет уровень. Возвращает false, если уровня не было.
func (s *Store) RemoveLevel(number int) bool {
	if _, ok := s.levels[number]; !ok {
		return false
	}
	delete(s.levels, number)
	return true
}

// FindLevel возвращает уровень по номеру или nil.
func (s *Store) FindLevel(number int) *domain.Level {
	return s.levels[number]
}

// Levels возвращает уровни, отсортированные по номеру.
func (s *Store) Levels() []*domain.Level {
	out := make([]*domain.Level, 0, len(s.levels))
	for _, lvl := range s.levels {
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LevelNumber < out[j].LevelNumber
	})
	return out
}
