package entities

import "time"

// Favorite is a house kept in the favorites list.
//
// Persisted as the house payload with an extra favorTime field.
type Favorite struct {
	HouseData
	FavorTime time.Time `json:"favorTime"`
}
