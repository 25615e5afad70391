package interfaces

import (
	"context"

	"my_trip/internal/domain/entities"
)

// IHomeAPI abstracts the remote feed behind the home page and city picker.
type IHomeAPI interface {
	GetHotSuggests(ctx context.Context) ([]entities.HotSuggest, error)
	GetCategories(ctx context.Context) ([]entities.Category, error)
	GetHouselist(ctx context.Context, page int) ([]entities.HouseListing, error)
	GetCityAll(ctx context.Context) (entities.AllCities, error)
}
