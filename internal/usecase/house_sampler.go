package usecase

import (
	"math/rand/v2"

	"my_trip/internal/domain/entities"
)

// SelectRandomHouses draws up to n distinct houses from listings without
// replacement. Listings without data or without a house id are skipped. The
// result is in draw order and listings is left unchanged.
func SelectRandomHouses(listings []entities.HouseListing, n int, rng *rand.Rand) []entities.HouseData {
	pool := make([]entities.HouseData, 0, len(listings))
	for _, l := range listings {
		if l.HasHouse() {
			pool = append(pool, *l.Data)
		}
	}

	n = min(n, len(pool))
	if n <= 0 {
		return []entities.HouseData{}
	}

	picked := make([]entities.HouseData, 0, n)
	for range n {
		i := rng.IntN(len(pool))
		picked = append(picked, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return picked
}
