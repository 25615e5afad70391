package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderStatus    = errors.New("invalid order status")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderStoreUnavailable = errors.New("order store not configured")
)

const DefaultOrdersStorageKey = "my-trip-orders"

// TransitionPolicy decides which status changes UpdateStatus accepts.
type TransitionPolicy int

const (
	// TransitionPermissive accepts any stored status from any status.
	TransitionPermissive TransitionPolicy = iota
	// TransitionStrict only accepts moves listed by entities.CanTransitionTo.
	TransitionStrict
)

// CreateOrderInput carries what the booking page knows about a new order.
type CreateOrderInput struct {
	HouseInfo    entities.HouseInfo
	CheckInDate  string
	CheckOutDate string
	Nights       int
	GuestInfo    entities.GuestInfo
}

// IOrderUseCase is the local order store.
//
// Mutations persist the full collection before returning. A missing order id on
// status/delete operations is a silent no-op.
type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) entities.Order
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
	Cancel(ctx context.Context, orderID string) error
	Pay(ctx context.Context, orderID string) error
	Complete(ctx context.Context, orderID string) error
	Delete(ctx context.Context, orderID string)
	Clear(ctx context.Context)
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	EnsureSeeded(ctx context.Context)

	List() []entities.Order
	GetByID(orderID string) (entities.Order, bool)
	Count() int
	FilteredBy(tab entities.OrderStatus) []entities.Order
	StatusCounts() map[entities.OrderStatus]int
	HasAny(status entities.OrderStatus) bool
	Search(params SearchParams) []entities.Order
	Statistics() OrderStatistics
	SetCurrentTab(tab entities.OrderStatus) error
	CurrentTab() entities.OrderStatus
	FilteredOrders() []entities.Order
}

// OrderUseCase holds the order collection in memory, most recent first, and
// mirrors it to a single key of the durable store.
type OrderUseCase struct {
	mu         sync.RWMutex
	orders     []entities.Order
	currentTab entities.OrderStatus

	store      interfaces.IKeyValueStore
	houses     interfaces.IHouseListingSource
	storageKey string
	policy     TransitionPolicy
	now        func() time.Time
	rng        *rand.Rand
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

type OrderOption func(*OrderUseCase)

func WithOrdersStorageKey(key string) OrderOption {
	return func(u *OrderUseCase) {
		if key = strings.TrimSpace(key); key != "" {
			u.storageKey = key
		}
	}
}

func WithTransitionPolicy(p TransitionPolicy) OrderOption {
	return func(u *OrderUseCase) { u.policy = p }
}

// WithClock replaces the wall clock used for createTime, payTime and order ids.
func WithClock(now func() time.Time) OrderOption {
	return func(u *OrderUseCase) {
		if now != nil {
			u.now = now
		}
	}
}

// WithRand replaces the random source used for order ids and seeding.
func WithRand(r *rand.Rand) OrderOption {
	return func(u *OrderUseCase) {
		if r != nil {
			u.rng = r
		}
	}
}

func NewOrderUseCase(store interfaces.IKeyValueStore, houses interfaces.IHouseListingSource, opts ...OrderOption) *OrderUseCase {
	u := &OrderUseCase{
		orders:     make([]entities.Order, 0),
		currentTab: entities.OrderStatusAll,
		store:      store,
		houses:     houses,
		storageKey: DefaultOrdersStorageKey,
		policy:     TransitionPermissive,
		now:        time.Now,
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6d795f74726970)),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) entities.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now().UTC()
	order := entities.Order{
		OrderID:      u.newOrderIDLocked(now, nil),
		HouseInfo:    in.HouseInfo,
		CheckInDate:  in.CheckInDate,
		CheckOutDate: in.CheckOutDate,
		Nights:       in.Nights,
		TotalPrice:   entities.CalculateTotalPrice(in.HouseInfo.FinalPrice, in.Nights),
		Status:       entities.OrderStatusPending,
		CreateTime:   now,
		PayTime:      nil,
		GuestInfo:    in.GuestInfo,
	}
	order = order.Clone()

	u.orders = append([]entities.Order{order}, u.orders...)
	_ = u.saveLocked(ctx)
	log.Printf("[order][usecase] create success order_id=%s house_id=%s nights=%d total_price=%.2f", order.OrderID, order.HouseInfo.HouseID, order.Nights, order.TotalPrice)
	return order.Clone()
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	if !status.IsStored() {
		log.Printf("[order][usecase] update-status rejected order_id=%s status=%q", orderID, status)
		return ErrInvalidOrderStatus
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexLocked(orderID)
	if idx < 0 {
		log.Printf("[order][usecase] update-status skipped (not found) order_id=%s status=%s", orderID, status)
		return nil
	}

	order := &u.orders[idx]
	if u.policy == TransitionStrict && !entities.CanTransitionTo(order.Status, status) {
		log.Printf("[order][usecase] update-status rejected order_id=%s from=%s to=%s", orderID, order.Status, status)
		return &entities.InvalidStatusTransitionError{OrderID: orderID, FromStatus: order.Status, ToStatus: status}
	}

	from := order.Status
	order.Status = status
	if status == entities.OrderStatusPaid {
		payTime := u.now().UTC()
		order.PayTime = &payTime
	}
	_ = u.saveLocked(ctx)
	log.Printf("[order][usecase] update-status success order_id=%s from=%s to=%s", orderID, from, status)
	return nil
}

func (u *OrderUseCase) Cancel(ctx context.Context, orderID string) error {
	return u.UpdateStatus(ctx, orderID, entities.OrderStatusCancelled)
}

func (u *OrderUseCase) Pay(ctx context.Context, orderID string) error {
	return u.UpdateStatus(ctx, orderID, entities.OrderStatusPaid)
}

func (u *OrderUseCase) Complete(ctx context.Context, orderID string) error {
	return u.UpdateStatus(ctx, orderID, entities.OrderStatusCompleted)
}

func (u *OrderUseCase) Delete(ctx context.Context, orderID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexLocked(orderID)
	if idx < 0 {
		log.Printf("[order][usecase] delete skipped (not found) order_id=%s", orderID)
		return
	}
	u.orders = append(u.orders[:idx:idx], u.orders[idx+1:]...)
	_ = u.saveLocked(ctx)
	log.Printf("[order][usecase] delete success order_id=%s", orderID)
}

func (u *OrderUseCase) Clear(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.orders = make([]entities.Order, 0)
	_ = u.saveLocked(ctx)
	log.Printf("[order][usecase] clear success")
}

// Load replaces the in-memory collection with the persisted one.
//
// An absent key leaves memory untouched. Unreadable data resets the collection to
// empty and is only logged. Store read errors are returned.
func (u *OrderUseCase) Load(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.store == nil {
		log.Printf("[order][usecase] load failed err=%v", ErrOrderStoreUnavailable)
		return ErrOrderStoreUnavailable
	}

	raw, ok, err := u.store.Get(ctx, u.storageKey)
	if err != nil {
		log.Printf("[order][usecase] load failed key=%s err=%v", u.storageKey, err)
		return fmt.Errorf("load orders: %w", err)
	}
	if !ok {
		log.Printf("[order][usecase] load skipped (no data) key=%s", u.storageKey)
		return nil
	}

	var orders []entities.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		log.Printf("[order][usecase] load decode failed; resetting to empty key=%s err=%v", u.storageKey, err)
		u.orders = make([]entities.Order, 0)
		return nil
	}
	if orders == nil {
		orders = make([]entities.Order, 0)
	}
	u.orders = orders
	log.Printf("[order][usecase] load success key=%s count=%d", u.storageKey, len(orders))
	return nil
}

// Save writes the whole collection. A failed write is logged and returned; the
// in-memory collection stays as it is.
func (u *OrderUseCase) Save(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.saveLocked(ctx)
}

func (u *OrderUseCase) saveLocked(ctx context.Context) error {
	if u.store == nil {
		log.Printf("[order][usecase] save failed err=%v", ErrOrderStoreUnavailable)
		return ErrOrderStoreUnavailable
	}
	b, err := json.Marshal(u.orders)
	if err != nil {
		log.Printf("[order][usecase] save encode failed err=%v", err)
		return err
	}
	if err := u.store.Set(ctx, u.storageKey, string(b)); err != nil {
		log.Printf("[order][usecase] save failed key=%s count=%d err=%v", u.storageKey, len(u.orders), err)
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (u *OrderUseCase) List() []entities.Order {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return cloneOrders(u.orders)
}

func (u *OrderUseCase) GetByID(orderID string) (entities.Order, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	idx := u.indexLocked(orderID)
	if idx < 0 {
		return entities.Order{}, false
	}
	return u.orders[idx].Clone(), true
}

func (u *OrderUseCase) indexLocked(orderID string) int {
	for i := range u.orders {
		if u.orders[i].OrderID == orderID {
			return i
		}
	}
	return -1
}

const orderIDAttemptsPerMilli = 1000

// newOrderIDLocked returns ORDER<unix millis><3 random digits>, drawing again
// while the id is already taken by the collection or by pending. After
// orderIDAttemptsPerMilli misses the next millisecond is used.
func (u *OrderUseCase) newOrderIDLocked(now time.Time, pending []entities.Order) string {
	for attempt := 0; ; attempt++ {
		if attempt > 0 && attempt%orderIDAttemptsPerMilli == 0 {
			now = now.Add(time.Millisecond)
		}
		id := fmt.Sprintf("ORDER%d%03d", now.UnixMilli(), u.rng.IntN(1000))
		if u.indexLocked(id) < 0 && !containsOrderID(pending, id) {
			return id
		}
	}
}

func containsOrderID(orders []entities.Order, id string) bool {
	for i := range orders {
		if orders[i].OrderID == id {
			return true
		}
	}
	return false
}

func cloneOrders(in []entities.Order) []entities.Order {
	out := make([]entities.Order, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
