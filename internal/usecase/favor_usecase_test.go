package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"my_trip/internal/adapter/persistence/repository"
	"my_trip/internal/domain/entities"
)

func TestFavorUseCase(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, time.May, 4, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return at }

	t.Run("add is idempotent per house id", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		uc := NewFavorUseCase(store, "", clock)

		added, err := uc.Add(ctx, entities.HouseData{HouseID: "h1", HouseName: "Loft"})
		if err != nil || !added {
			t.Fatalf("expected first add to succeed, added=%v err=%v", added, err)
		}
		added, err = uc.Add(ctx, entities.HouseData{HouseID: "h1", HouseName: "Loft again"})
		if err != nil || added {
			t.Fatalf("expected duplicate add to be skipped, added=%v err=%v", added, err)
		}
		list := uc.List()
		if len(list) != 1 || list[0].HouseName != "Loft" || !list[0].FavorTime.Equal(at) {
			t.Fatalf("unexpected favorites: %+v", list)
		}
		if _, ok, _ := store.Get(ctx, DefaultFavorStorageKey); !ok {
			t.Fatalf("expected favorites to be persisted under default key")
		}
	})

	t.Run("empty house id", func(t *testing.T) {
		uc := NewFavorUseCase(repository.NewKVMemoryRepository(), "", clock)
		if _, err := uc.Add(ctx, entities.HouseData{HouseID: " "}); !errors.Is(err, ErrInvalidHouseID) {
			t.Fatalf("expected ErrInvalidHouseID, got %v", err)
		}
	})

	t.Run("toggle and remove", func(t *testing.T) {
		uc := NewFavorUseCase(repository.NewKVMemoryRepository(), "favs", clock)
		house := entities.HouseData{HouseID: "h2"}

		on, err := uc.Toggle(ctx, house)
		if err != nil || !on || !uc.IsFavorite("h2") {
			t.Fatalf("expected toggle on, on=%v err=%v", on, err)
		}
		on, err = uc.Toggle(ctx, house)
		if err != nil || on || uc.IsFavorite("h2") {
			t.Fatalf("expected toggle off, on=%v err=%v", on, err)
		}
		if uc.Remove(ctx, "h2") {
			t.Fatalf("remove of absent house must report false")
		}
	})

	t.Run("keeps insertion order and survives reload", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		uc := NewFavorUseCase(store, "", clock)
		for _, id := range []string{"a", "b", "c"} {
			_, _ = uc.Add(ctx, entities.HouseData{HouseID: id})
		}
		uc.Remove(ctx, "b")

		reloaded := NewFavorUseCase(store, "", clock)
		if err := reloaded.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list := reloaded.List()
		if len(list) != 2 || list[0].HouseID != "a" || list[1].HouseID != "c" {
			t.Fatalf("unexpected reloaded favorites: %+v", list)
		}
	})

	t.Run("clear and corrupt data", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		uc := NewFavorUseCase(store, "", clock)
		_, _ = uc.Add(ctx, entities.HouseData{HouseID: "a"})
		uc.Clear(ctx)
		if uc.Count() != 0 {
			t.Fatalf("expected empty favorites")
		}

		_, _ = uc.Add(ctx, entities.HouseData{HouseID: "a"})
		_ = store.Set(ctx, DefaultFavorStorageKey, "[oops")
		if err := uc.Load(ctx); err != nil {
			t.Fatalf("expected decode failure to be swallowed, got %v", err)
		}
		if uc.Count() != 0 {
			t.Fatalf("expected reset to empty, got %d", uc.Count())
		}
	})
}
