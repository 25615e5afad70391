package usecase

import (
	"context"
	"log"
	"sync"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase/interfaces"
)

type ICityUseCase interface {
	FetchAllCities(ctx context.Context) error
	AllCities() entities.AllCities
}

type CityUseCase struct {
	mu        sync.RWMutex
	allCities entities.AllCities
	api       interfaces.IHomeAPI
}

var _ ICityUseCase = (*CityUseCase)(nil)

func NewCityUseCase(api interfaces.IHomeAPI) *CityUseCase {
	return &CityUseCase{allCities: entities.AllCities{}, api: api}
}

func (u *CityUseCase) FetchAllCities(ctx context.Context) error {
	if u.api == nil {
		return ErrHomeAPINotConfigured
	}
	cities, err := u.api.GetCityAll(ctx)
	if err != nil {
		log.Printf("[city][usecase] fetch all cities failed err=%v", err)
		return err
	}
	if cities == nil {
		cities = entities.AllCities{}
	}
	u.mu.Lock()
	u.allCities = cities
	u.mu.Unlock()
	log.Printf("[city][usecase] fetch all cities success groups=%d", len(cities))
	return nil
}

func (u *CityUseCase) AllCities() entities.AllCities {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make(entities.AllCities, len(u.allCities))
	for k, v := range u.allCities {
		out[k] = v
	}
	return out
}
