package usecase

import (
	"math/rand/v2"
	"testing"

	"my_trip/internal/domain/entities"
)

func listing(id string, price float64) entities.HouseListing {
	return entities.HouseListing{Data: &entities.HouseData{HouseID: id, HouseName: "house " + id, FinalPrice: price}}
}

func TestSelectRandomHouses(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	t.Run("skips listings without house", func(t *testing.T) {
		listings := []entities.HouseListing{
			{CellType: 9},
			{Data: &entities.HouseData{HouseName: "no id"}},
			listing("a", 10),
		}
		got := SelectRandomHouses(listings, 3, rng)
		if len(got) != 1 || got[0].HouseID != "a" {
			t.Fatalf("expected only house a, got %+v", got)
		}
	})

	t.Run("draws without replacement", func(t *testing.T) {
		listings := []entities.HouseListing{listing("a", 1), listing("b", 2), listing("c", 3), listing("d", 4), listing("e", 5)}
		for range 20 {
			got := SelectRandomHouses(listings, 3, rng)
			if len(got) != 3 {
				t.Fatalf("expected 3 houses, got %d", len(got))
			}
			seen := map[string]bool{}
			for _, h := range got {
				if seen[h.HouseID] {
					t.Fatalf("house %s drawn twice", h.HouseID)
				}
				seen[h.HouseID] = true
			}
		}
		if listings[0].Data.HouseID != "a" || len(listings) != 5 {
			t.Fatalf("input listings were modified")
		}
	})

	t.Run("fewer eligible than requested", func(t *testing.T) {
		got := SelectRandomHouses([]entities.HouseListing{listing("a", 1), listing("b", 2)}, 3, rng)
		if len(got) != 2 {
			t.Fatalf("expected 2 houses, got %d", len(got))
		}
	})

	t.Run("non positive count", func(t *testing.T) {
		got := SelectRandomHouses([]entities.HouseListing{listing("a", 1)}, 0, rng)
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})
}
