package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase/interfaces"
)

var ErrHomeAPINotConfigured = errors.New("home api not configured")

type IHomeUseCase interface {
	FetchHotSuggests(ctx context.Context) error
	FetchCategories(ctx context.Context) error
	FetchHouselist(ctx context.Context) error
	FetchAll(ctx context.Context) error
	HotSuggests() []entities.HotSuggest
	Categories() []entities.Category
	CurrentPage() int
	Listings() []entities.HouseListing
}

// HomeUseCase caches the home feed. Each successful houselist fetch appends one
// page and advances CurrentPage.
type HomeUseCase struct {
	mu          sync.RWMutex
	hotSuggests []entities.HotSuggest
	categories  []entities.Category
	currentPage int
	houselist   []entities.HouseListing

	api   interfaces.IHomeAPI
	group singleflight.Group
}

var (
	_ IHomeUseCase                   = (*HomeUseCase)(nil)
	_ interfaces.IHouseListingSource = (*HomeUseCase)(nil)
)

func NewHomeUseCase(api interfaces.IHomeAPI) *HomeUseCase {
	return &HomeUseCase{
		hotSuggests: make([]entities.HotSuggest, 0),
		categories:  make([]entities.Category, 0),
		currentPage: 1,
		houselist:   make([]entities.HouseListing, 0),
		api:         api,
	}
}

func (u *HomeUseCase) FetchHotSuggests(ctx context.Context) error {
	if u.api == nil {
		return ErrHomeAPINotConfigured
	}
	suggests, err := u.api.GetHotSuggests(ctx)
	if err != nil {
		log.Printf("[home][usecase] fetch hot suggests failed err=%v", err)
		return err
	}
	u.mu.Lock()
	u.hotSuggests = suggests
	u.mu.Unlock()
	return nil
}

func (u *HomeUseCase) FetchCategories(ctx context.Context) error {
	if u.api == nil {
		return ErrHomeAPINotConfigured
	}
	categories, err := u.api.GetCategories(ctx)
	if err != nil {
		log.Printf("[home][usecase] fetch categories failed err=%v", err)
		return err
	}
	u.mu.Lock()
	u.categories = categories
	u.mu.Unlock()
	return nil
}

// FetchHouselist loads the current page and appends it. Concurrent calls for
// the same page share one request and append once.
func (u *HomeUseCase) FetchHouselist(ctx context.Context) error {
	if u.api == nil {
		return ErrHomeAPINotConfigured
	}
	page := u.CurrentPage()

	_, err, shared := u.group.Do("houselist:"+strconv.Itoa(page), func() (any, error) {
		listings, err := u.api.GetHouselist(ctx, page)
		if err != nil {
			return nil, err
		}
		u.mu.Lock()
		defer u.mu.Unlock()
		if u.currentPage != page {
			return nil, nil
		}
		u.houselist = append(u.houselist, listings...)
		u.currentPage++
		log.Printf("[home][usecase] fetch houselist success page=%d added=%d total=%d", page, len(listings), len(u.houselist))
		return nil, nil
	})
	if err != nil {
		log.Printf("[home][usecase] fetch houselist failed page=%d shared=%t err=%v", page, shared, err)
		return err
	}
	return nil
}

// FetchAll loads suggestions, categories and the next houselist page concurrently.
func (u *HomeUseCase) FetchAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return u.FetchHotSuggests(gctx) })
	g.Go(func() error { return u.FetchCategories(gctx) })
	g.Go(func() error { return u.FetchHouselist(gctx) })
	return g.Wait()
}

func (u *HomeUseCase) HotSuggests() []entities.HotSuggest {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entities.HotSuggest(nil), u.hotSuggests...)
}

func (u *HomeUseCase) Categories() []entities.Category {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entities.Category(nil), u.categories...)
}

func (u *HomeUseCase) CurrentPage() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.currentPage
}

// Listings returns a copy of the accumulated houselist.
func (u *HomeUseCase) Listings() []entities.HouseListing {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]entities.HouseListing, len(u.houselist))
	for i, l := range u.houselist {
		if l.Data != nil {
			d := *l.Data
			l.Data = &d
		}
		out[i] = l
	}
	return out
}
