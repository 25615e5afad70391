package interfaces

import "my_trip/internal/domain/entities"

// IHouseListingSource exposes the house listings currently held by the home store.
// Order seeding reads it once; it never triggers a fetch.
type IHouseListingSource interface {
	Listings() []entities.HouseListing
}
