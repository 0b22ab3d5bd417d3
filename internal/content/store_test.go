package content

import (
	"errors"
	"testing"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
)

// Helper: минимальный валидный тайл
func makeTile(id string, walkable bool, x, y int) *domain.GameObject {
	return &domain.GameObject{
		ID:         id,
		Name:       id,
		ObjectType: domain.ObjectTypeTile,
		Walkable:   domain.Bool(walkable),
		Sprites:    []domain.SpriteCoord{{X: x, Y: y}},
	}
}

func TestStore_AddRejectsDuplicateID(t *testing.T) {
	st := NewStore()
	if err := st.Add(makeTile("wall", false, 0, 0)); err != nil {
		t.Fatal(err)
	}

	err := st.Add(makeTile("wall", true, 1, 1))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if st.Len() != 1 {
		t.Errorf("store has %d objects, want 1", st.Len())
	}
}

func TestStore_AllPreservesInsertionOrder(t *testing.T) {
	st := NewStore()
	ids := []string{"zebra", "alpha", "middle"}
	for i, id := range ids {
		if err := st.Add(makeTile(id, false, i, 0)); err != nil {
			t.Fatal(err)
		}
	}

	all := st.All()
	for i, id := range ids {
		if all[i].ID != id {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestStore_UpdateKeepsOrderPosition(t *testing.T) {
	st := NewStore()
	st.Add(makeTile("a", false, 0, 0))
	st.Add(makeTile("b", false, 1, 0))
	st.Add(makeTile("c", false, 2, 0))

	if err := st.Update(makeTile("b", true, 5, 5)); err != nil {
		t.Fatal(err)
	}

	all := st.All()
	if all[1].ID != "b" {
		t.Errorf("updated object moved: All()[1] = %q, want b", all[1].ID)
	}
	if !all[1].IsWalkable() {
		t.Error("update did not replace object data")
	}

	// Обновление несуществующего - ошибка, а не вставка
	err := st.Update(makeTile("ghost", false, 0, 0))
	if !errors.Is(err, ErrUnknownID) {
		t.Fatalf("expected ErrUnknownID, got %v", err)
	}
}

func TestStore_AddNormalizesSprites(t *testing.T) {
	st := NewStore()

	// nil sprites без legacy-полей -> пустой массив
	plain := &domain.GameObject{ID: "plain", Name: "Plain", ObjectType: domain.ObjectTypeItem}
	if err := st.Add(plain); err != nil {
		t.Fatal(err)
	}
	if plain.Sprites == nil || len(plain.Sprites) != 0 {
		t.Errorf("Sprites = %v, want empty non-nil slice", plain.Sprites)
	}

	// nil sprites с legacy sprite_x/sprite_y -> синтез одной координаты
	legacy := &domain.GameObject{
		ID: "legacy", Name: "Legacy", ObjectType: domain.ObjectTypeItem,
		SpriteX: domain.Int(3), SpriteY: domain.Int(7),
	}
	if err := st.Add(legacy); err != nil {
		t.Fatal(err)
	}
	if len(legacy.Sprites) != 1 || legacy.Sprites[0] != (domain.SpriteCoord{X: 3, Y: 7}) {
		t.Errorf("Sprites = %v, want [{3 7}]", legacy.Sprites)
	}
}

func TestFromDocument_NoNormalization(t *testing.T) {
	// Загрузка с диска обязана сохранить сырое состояние: валидация после
	// загрузки должна видеть отсутствующие sprites.
	raw := &domain.GameObject{ID: "raw", Name: "Raw", ObjectType: domain.ObjectTypeTile}
	st, err := FromDocument([]*domain.GameObject{raw}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if st.Find("raw").Sprites != nil {
		t.Error("FromDocument must not normalize sprites")
	}

	// Дубликаты недопустимы даже при загрузке
	_, err = FromDocument([]*domain.GameObject{
		makeTile("x", false, 0, 0),
		makeTile("x", true, 1, 1),
	}, nil)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestStore_Remove(t *testing.T) {
	st := NewStore()
	st.Add(makeTile("a", false, 0, 0))
	st.Add(makeTile("b", false, 1, 0))

	if !st.Remove("a") {
		t.Fatal("Remove(a) = false, want true")
	}
	if st.Remove("a") {
		t.Error("second Remove(a) = true, want false")
	}
	if st.Find("a") != nil {
		t.Error("removed object still findable")
	}

	all := st.All()
	if len(all) != 1 || all[0].ID != "b" {
		t.Errorf("All() = %v, want just b", all)
	}
}

func TestStore_MonsterCharacters(t *testing.T) {
	st := NewStore()
	st.Add(makeTile("wall", false, 0, 0))
	st.Add(&domain.GameObject{
		ID: "orc", Name: "Orc", ObjectType: domain.ObjectTypeCharacter,
		Monster: domain.Bool(true),
	})
	st.Add(&domain.GameObject{
		ID: "player", Name: "Player", ObjectType: domain.ObjectTypeCharacter,
	})
	// Флаг из properties тоже считается (старые документы)
	st.Add(&domain.GameObject{
		ID: "rat", Name: "Rat", ObjectType: domain.ObjectTypeCharacter,
		Properties: map[string]string{"monster": "true"},
	})
	// monster=true на не-персонаже игнорируется
	st.Add(&domain.GameObject{
		ID: "cursed_sword", Name: "Cursed", ObjectType: domain.ObjectTypeItem,
		Monster: domain.Bool(true),
	})

	got := st.MonsterCharacters()
	if len(got) != 2 || got[0].ID != "orc" || got[1].ID != "rat" {
		ids := make([]string, len(got))
		for i, o := range got {
			ids[i] = o.ID
		}
		t.Errorf("MonsterCharacters() = %v, want [orc rat]", ids)
	}
}

func TestStore_Levels(t *testing.T) {
	st := NewStore()
	mk := func(n int) *domain.Level {
		return &domain.Level{LevelNumber: n, MinRooms: 1, MaxRooms: 2}
	}

	if err := st.AddLevel(mk(3)); err != nil {
		t.Fatal(err)
	}
	if err := st.AddLevel(mk(1)); err != nil {
		t.Fatal(err)
	}
	if err := st.AddLevel(mk(2)); err != nil {
		t.Fatal(err)
	}

	// Дубликат номера
	if err := st.AddLevel(mk(1)); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	// Levels() сортирует по номеру независимо от порядка добавления
	lvls := st.Levels()
	for i, want := range []int{1, 2, 3} {
		if lvls[i].LevelNumber != want {
			t.Errorf("Levels()[%d] = %d, want %d", i, lvls[i].LevelNumber, want)
		}
	}

	// Нарушенные границы не попадают в стор
	bad := &domain.Level{LevelNumber: 4, MinRooms: 5, MaxRooms: 2}
	if err := st.AddLevel(bad); err == nil {
		t.Error("level with min_rooms > max_rooms must be rejected")
	}
	if err := st.UpdateLevel(&domain.Level{LevelNumber: 9, MinRooms: 1, MaxRooms: 2}); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("expected ErrUnknownID, got %v", err)
	}

	if !st.RemoveLevel(2) {
		t.Error("RemoveLevel(2) = false, want true")
	}
	if st.FindLevel(2) != nil {
		t.Error("removed level still findable")
	}
}
