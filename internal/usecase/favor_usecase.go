package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase/interfaces"
)

var ErrInvalidHouseID = errors.New("invalid house id")

const DefaultFavorStorageKey = "my-trip-favor"

type IFavorUseCase interface {
	Add(ctx context.Context, house entities.HouseData) (bool, error)
	Remove(ctx context.Context, houseID string) bool
	Toggle(ctx context.Context, house entities.HouseData) (bool, error)
	IsFavorite(houseID string) bool
	Count() int
	List() []entities.Favorite
	Clear(ctx context.Context)
	Load(ctx context.Context) error
	Save(ctx context.Context) error
}

// FavorUseCase keeps the user's favourite houses in insertion order, one entry
// per house id, mirrored to a single key of the durable store.
type FavorUseCase struct {
	mu     sync.RWMutex
	favors []entities.Favorite

	store      interfaces.IKeyValueStore
	storageKey string
	now        func() time.Time
}

var _ IFavorUseCase = (*FavorUseCase)(nil)

func NewFavorUseCase(store interfaces.IKeyValueStore, storageKey string, now func() time.Time) *FavorUseCase {
	if storageKey = strings.TrimSpace(storageKey); storageKey == "" {
		storageKey = DefaultFavorStorageKey
	}
	if now == nil {
		now = time.Now
	}
	return &FavorUseCase{
		favors:     make([]entities.Favorite, 0),
		store:      store,
		storageKey: storageKey,
		now:        now,
	}
}

// Add appends house unless it is already a favourite. It reports whether the
// collection changed.
func (u *FavorUseCase) Add(ctx context.Context, house entities.HouseData) (bool, error) {
	if strings.TrimSpace(house.HouseID) == "" {
		return false, ErrInvalidHouseID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.indexLocked(house.HouseID) >= 0 {
		log.Printf("[favor][usecase] add skipped (exists) house_id=%s", house.HouseID)
		return false, nil
	}
	u.favors = append(u.favors, entities.Favorite{HouseData: house, FavorTime: u.now().UTC()})
	_ = u.saveLocked(ctx)
	log.Printf("[favor][usecase] add success house_id=%s count=%d", house.HouseID, len(u.favors))
	return true, nil
}

func (u *FavorUseCase) Remove(ctx context.Context, houseID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexLocked(houseID)
	if idx < 0 {
		return false
	}
	u.favors = append(u.favors[:idx:idx], u.favors[idx+1:]...)
	_ = u.saveLocked(ctx)
	log.Printf("[favor][usecase] remove success house_id=%s count=%d", houseID, len(u.favors))
	return true
}

// Toggle flips the favourite state of house and returns the new state.
func (u *FavorUseCase) Toggle(ctx context.Context, house entities.HouseData) (bool, error) {
	if u.IsFavorite(house.HouseID) {
		u.Remove(ctx, house.HouseID)
		return false, nil
	}
	if _, err := u.Add(ctx, house); err != nil {
		return false, err
	}
	return true, nil
}

func (u *FavorUseCase) IsFavorite(houseID string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.indexLocked(houseID) >= 0
}

func (u *FavorUseCase) Count() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.favors)
}

func (u *FavorUseCase) List() []entities.Favorite {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]entities.Favorite, len(u.favors))
	for i, f := range u.favors {
		if f.PriceTipBadge != nil {
			b := *f.PriceTipBadge
			f.PriceTipBadge = &b
		}
		out[i] = f
	}
	return out
}

func (u *FavorUseCase) Clear(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.favors = make([]entities.Favorite, 0)
	_ = u.saveLocked(ctx)
	log.Printf("[favor][usecase] clear success")
}

// Load behaves like OrderUseCase.Load: an absent key keeps memory, unreadable
// data resets to empty.
func (u *FavorUseCase) Load(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.store == nil {
		return ErrOrderStoreUnavailable
	}
	raw, ok, err := u.store.Get(ctx, u.storageKey)
	if err != nil {
		log.Printf("[favor][usecase] load failed key=%s err=%v", u.storageKey, err)
		return fmt.Errorf("load favorites: %w", err)
	}
	if !ok {
		return nil
	}

	var favors []entities.Favorite
	if err := json.Unmarshal([]byte(raw), &favors); err != nil {
		log.Printf("[favor][usecase] load decode failed; resetting to empty key=%s err=%v", u.storageKey, err)
		u.favors = make([]entities.Favorite, 0)
		return nil
	}
	if favors == nil {
		favors = make([]entities.Favorite, 0)
	}
	u.favors = favors
	log.Printf("[favor][usecase] load success key=%s count=%d", u.storageKey, len(favors))
	return nil
}

func (u *FavorUseCase) Save(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.saveLocked(ctx)
}

func (u *FavorUseCase) saveLocked(ctx context.Context) error {
	if u.store == nil {
		log.Printf("[favor][usecase] save failed err=%v", ErrOrderStoreUnavailable)
		return ErrOrderStoreUnavailable
	}
	b, err := json.Marshal(u.favors)
	if err != nil {
		return err
	}
	if err := u.store.Set(ctx, u.storageKey, string(b)); err != nil {
		log.Printf("[favor][usecase] save failed key=%s err=%v", u.storageKey, err)
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func (u *FavorUseCase) indexLocked(houseID string) int {
	for i := range u.favors {
		if u.favors[i].HouseID == houseID {
			return i
		}
	}
	return -1
}
