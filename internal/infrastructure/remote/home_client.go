package remote

import (
	"context"
	"net/url"
	"strconv"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase/interfaces"
)

// HomeClient serves the home feed and city picker.
type HomeClient struct {
	*Client
}

var _ interfaces.IHomeAPI = (*HomeClient)(nil)

func NewHomeClient(c *Client) *HomeClient {
	return &HomeClient{Client: c}
}

func (c *HomeClient) GetHotSuggests(ctx context.Context) ([]entities.HotSuggest, error) {
	var out []entities.HotSuggest
	if err := c.get(ctx, "/home/hotSuggests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HomeClient) GetCategories(ctx context.Context) ([]entities.Category, error) {
	var out []entities.Category
	if err := c.get(ctx, "/home/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HomeClient) GetHouselist(ctx context.Context, page int) ([]entities.HouseListing, error) {
	if page < 1 {
		page = 1
	}
	var out []entities.HouseListing
	if err := c.get(ctx, "/home/houselist", url.Values{"page": {strconv.Itoa(page)}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HomeClient) GetCityAll(ctx context.Context) (entities.AllCities, error) {
	out := entities.AllCities{}
	if err := c.get(ctx, "/city/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
