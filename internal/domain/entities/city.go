package entities

import "encoding/json"

// CityGroup is one tab of the city picker (e.g. domestic / overseas).
//
// Cities is kept raw: the picker renders it as-is and nothing in the store reads into it.
type CityGroup struct {
	Title  string          `json:"title"`
	Cities json.RawMessage `json:"cities"`
}

// AllCities is the payload of the city picker keyed by group name.
type AllCities map[string]CityGroup
