package server

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/content"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
)

// Helper: сервис с одним расходником без healing_power (есть что чинить)
func setupFixableService(t *testing.T) *Service {
	t.Helper()
	_, svc := setupTestServer(t, "")

	st, err := content.FromDocument([]*domain.GameObject{
		{
			ID: "potion", Name: "Potion", ObjectType: domain.ObjectTypeConsumable,
			Walkable: domain.Bool(false),
			Sprites:  []domain.SpriteCoord{{X: 0, Y: 0}},
		},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	svc.Store = st
	svc.Content.Store = st
	return svc
}

func TestService_ObjectsSnapshotIsolatedFromFix(t *testing.T) {
	svc := setupFixableService(t)

	// Снимок до ремонта
	snapshot := svc.Objects()
	if len(snapshot) != 1 || snapshot[0].HealingPower != nil {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}

	// Fix мутирует живые объекты стора на месте
	res := svc.Fix()
	if res.FixedCount != 1 {
		t.Fatalf("FixedCount = %d, want 1", res.FixedCount)
	}
	if hp := svc.Store.Find("potion").HealingPower; hp == nil || *hp != content.DefaultHealingPower {
		t.Fatal("store object was not repaired")
	}

	// Ранее выданный снимок ремонт видеть не должен
	if snapshot[0].HealingPower != nil {
		t.Error("snapshot observed in-place mutation from Fix")
	}

	// И наоборот: порча снимка не трогает стор
	snapshot[0].Name = "Vandalized"
	if svc.Store.Find("potion").Name != "Potion" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestService_LevelsSnapshotIsolated(t *testing.T) {
	_, svc := setupTestServer(t, "")

	lvls := svc.Levels()
	if len(lvls) == 0 {
		t.Fatal("default content has no levels")
	}
	lvls[0].AllowedMonsters = append(lvls[0].AllowedMonsters[:0], "vandal")

	fresh := svc.Levels()
	for _, id := range fresh[0].AllowedMonsters {
		if id == "vandal" {
			t.Error("mutating a level snapshot leaked into the store")
		}
	}
}

func TestService_MutatorsReturnDetachedCopies(t *testing.T) {
	_, svc := setupTestServer(t, "")

	saved, err := svc.AddObject(&domain.GameObject{
		ID: "elixir", Name: "Elixir", ObjectType: domain.ObjectTypeConsumable,
		Walkable: domain.Bool(false),
	})
	if err != nil {
		t.Fatal(err)
	}
	// Ответ несет нормализованные sprites
	if saved.Sprites == nil || len(saved.Sprites) != 0 {
		t.Errorf("saved.Sprites = %v, want empty non-nil", saved.Sprites)
	}

	// Последующий ремонт стора ответ не трогает
	svc.Fix()
	if saved.HealingPower != nil {
		t.Error("returned copy observed later Fix mutation")
	}

	savedLvl, err := svc.AddLevel(&domain.Level{LevelNumber: 7, MinRooms: 1, MaxRooms: 2})
	if err != nil {
		t.Fatal(err)
	}
	savedLvl.MaxRooms = 99
	if svc.Store.FindLevel(7).MaxRooms != 2 {
		t.Error("mutating the returned level leaked into the store")
	}
}

func TestService_ConcurrentReadersDuringFix(t *testing.T) {
	// Читатели сериализуют снимки без мьютекса, Fix параллельно мутирует
	// стор на месте. Под -race тест ловит любое разделяемое состояние.
	svc := setupFixableService(t)

	const iterations = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			if _, err := json.Marshal(svc.Objects()); err != nil {
				t.Error(err)
				return
			}
			if _, err := json.Marshal(svc.Levels()); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			// Сначала ломаем healing_power заново, затем чиним -
			// каждая итерация реально мутирует живой объект
			if _, err := svc.UpdateObject(&domain.GameObject{
				ID: "potion", Name: "Potion", ObjectType: domain.ObjectTypeConsumable,
				Walkable: domain.Bool(false),
				Sprites:  []domain.SpriteCoord{{X: 0, Y: 0}},
			}); err != nil {
				t.Error(err)
				return
			}
			svc.Fix()
		}
	}()

	wg.Wait()
}
