package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"my_trip/internal/adapter/persistence/repository"
	"my_trip/internal/domain/entities"
	mock_interfaces "my_trip/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var orderIDPattern = regexp.MustCompile(`^ORDER\d{13}\d{3}$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestOrderUseCase(store *repository.KVMemoryRepository, opts ...OrderOption) *OrderUseCase {
	base := []OrderOption{
		WithClock(fixedClock(time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	}
	return NewOrderUseCase(store, nil, append(base, opts...)...)
}

func sampleInput(finalPrice float64, nights int) CreateOrderInput {
	return CreateOrderInput{
		HouseInfo: entities.HouseInfo{
			HouseID:    "h-1",
			HouseName:  "Sea View Loft",
			Location:   "Sanya",
			FinalPrice: finalPrice,
		},
		CheckInDate:  "2024-03-10",
		CheckOutDate: "2024-03-12",
		Nights:       nights,
		GuestInfo:    entities.GuestInfo{Name: "Ana", Phone: "138****0000", GuestCount: 2},
	}
}

func storedOrders(t *testing.T, store *repository.KVMemoryRepository, key string) []entities.Order {
	t.Helper()
	raw, ok, err := store.Get(context.Background(), key)
	if err != nil || !ok {
		t.Fatalf("expected persisted orders under %q, ok=%v err=%v", key, ok, err)
	}
	var out []entities.Order
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("persisted orders are not valid JSON: %v", err)
	}
	return out
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("prepends pending order and persists", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		uc := newTestOrderUseCase(store)
		ctx := context.Background()

		first := uc.Create(ctx, sampleInput(100, 2))
		second := uc.Create(ctx, sampleInput(50, 3))

		if first.Status != entities.OrderStatusPending || first.PayTime != nil {
			t.Fatalf("expected pending order without payTime, got %+v", first)
		}
		if first.TotalPrice != 200 || second.TotalPrice != 150 {
			t.Fatalf("unexpected totals: %v %v", first.TotalPrice, second.TotalPrice)
		}
		if !orderIDPattern.MatchString(first.OrderID) {
			t.Fatalf("unexpected order id %q", first.OrderID)
		}
		if first.OrderID == second.OrderID {
			t.Fatalf("expected distinct ids, got %q twice", first.OrderID)
		}

		list := uc.List()
		if len(list) != 2 || list[0].OrderID != second.OrderID || list[1].OrderID != first.OrderID {
			t.Fatalf("expected newest first, got %+v", list)
		}

		persisted := storedOrders(t, store, DefaultOrdersStorageKey)
		if len(persisted) != 2 || persisted[0].OrderID != second.OrderID {
			t.Fatalf("unexpected persisted orders: %+v", persisted)
		}
	})

	t.Run("zero nights gives zero total", func(t *testing.T) {
		uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
		o := uc.Create(context.Background(), sampleInput(120, 0))
		if o.TotalPrice != 0 {
			t.Fatalf("expected 0 total, got %v", o.TotalPrice)
		}
	})

	t.Run("store failure keeps order in memory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Set(gomock.Any(), DefaultOrdersStorageKey, gomock.Any()).Return(errors.New("disk full"))

		uc := NewOrderUseCase(store, nil)
		o := uc.Create(context.Background(), sampleInput(10, 1))
		if got, ok := uc.GetByID(o.OrderID); !ok || got.OrderID != o.OrderID {
			t.Fatalf("expected order to stay in memory")
		}
	})

	t.Run("custom storage key", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		uc := newTestOrderUseCase(store, WithOrdersStorageKey("custom-orders"))
		uc.Create(context.Background(), sampleInput(10, 1))
		if got := storedOrders(t, store, "custom-orders"); len(got) != 1 {
			t.Fatalf("expected one order under custom key, got %d", len(got))
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status", func(t *testing.T) {
		uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
		o := uc.Create(ctx, sampleInput(10, 1))
		for _, s := range []entities.OrderStatus{entities.OrderStatusAll, "shipped", ""} {
			if err := uc.UpdateStatus(ctx, o.OrderID, s); !errors.Is(err, ErrInvalidOrderStatus) {
				t.Fatalf("status %q: expected ErrInvalidOrderStatus, got %v", s, err)
			}
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		uc := newTestOrderUseCase(store)
		uc.Create(ctx, sampleInput(10, 1))
		before := uc.List()
		persistedBefore, _, _ := store.Get(ctx, DefaultOrdersStorageKey)

		for _, s := range entities.StoredOrderStatuses {
			if err := uc.UpdateStatus(ctx, "ORDER-missing", s); err != nil {
				t.Fatalf("status %s: expected nil error, got %v", s, err)
			}
		}
		if after := uc.List(); !reflect.DeepEqual(after, before) {
			t.Fatalf("collection changed:\nbefore %+v\nafter  %+v", before, after)
		}
		if persistedAfter, _, _ := store.Get(ctx, DefaultOrdersStorageKey); persistedAfter != persistedBefore {
			t.Fatalf("persisted data changed:\nbefore %s\nafter  %s", persistedBefore, persistedAfter)
		}
	})

	t.Run("unknown id does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Set(gomock.Any(), DefaultOrdersStorageKey, gomock.Any()).Return(nil).Times(1)

		uc := NewOrderUseCase(store, nil)
		uc.Create(ctx, sampleInput(10, 1))
		if err := uc.Pay(ctx, "ORDER-missing"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if err := uc.Complete(ctx, "ORDER-missing"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("pay stamps payTime", func(t *testing.T) {
		payAt := time.Date(2024, time.March, 2, 9, 30, 0, 0, time.UTC)
		clock := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
		uc := NewOrderUseCase(repository.NewKVMemoryRepository(), nil, WithClock(func() time.Time { return clock }))
		o := uc.Create(ctx, sampleInput(10, 1))

		clock = payAt
		if err := uc.Pay(ctx, o.OrderID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := uc.GetByID(o.OrderID)
		if got.Status != entities.OrderStatusPaid || got.PayTime == nil || !got.PayTime.Equal(payAt) {
			t.Fatalf("unexpected paid order: %+v", got)
		}
	})

	t.Run("cancel keeps payTime nil", func(t *testing.T) {
		uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
		o := uc.Create(ctx, sampleInput(10, 1))
		if err := uc.Cancel(ctx, o.OrderID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := uc.GetByID(o.OrderID)
		if got.Status != entities.OrderStatusCancelled || got.PayTime != nil {
			t.Fatalf("unexpected cancelled order: %+v", got)
		}
	})

	t.Run("complete keeps payTime", func(t *testing.T) {
		clock := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
		uc := NewOrderUseCase(repository.NewKVMemoryRepository(), nil, WithClock(func() time.Time { return clock }))
		o := uc.Create(ctx, sampleInput(10, 1))

		payAt := clock.Add(time.Hour)
		clock = payAt
		if err := uc.Pay(ctx, o.OrderID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock = payAt.Add(48 * time.Hour)
		if err := uc.Complete(ctx, o.OrderID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := uc.GetByID(o.OrderID)
		if got.Status != entities.OrderStatusCompleted || got.PayTime == nil || !got.PayTime.Equal(payAt) {
			t.Fatalf("expected completed order paid at %s, got %+v", payAt, got)
		}
	})

	t.Run("pay after cancel is allowed", func(t *testing.T) {
		uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
		o := uc.Create(ctx, sampleInput(10, 1))
		if err := uc.Cancel(ctx, o.OrderID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Pay(ctx, o.OrderID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := uc.GetByID(o.OrderID)
		if got.Status != entities.OrderStatusPaid || got.PayTime == nil {
			t.Fatalf("expected paid order, got %+v", got)
		}
	})

	t.Run("permissive policy allows any move", func(t *testing.T) {
		uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
		o := uc.Create(ctx, sampleInput(10, 1))
		if err := uc.Complete(ctx, o.OrderID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.UpdateStatus(ctx, o.OrderID, entities.OrderStatusPending); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := uc.GetByID(o.OrderID)
		if got.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
	})

	t.Run("strict policy rejects illegal move", func(t *testing.T) {
		uc := newTestOrderUseCase(repository.NewKVMemoryRepository(), WithTransitionPolicy(TransitionStrict))
		o := uc.Create(ctx, sampleInput(10, 1))

		err := uc.Complete(ctx, o.OrderID)
		var transitionErr *entities.InvalidStatusTransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("expected InvalidStatusTransitionError, got %v", err)
		}
		if transitionErr.FromStatus != entities.OrderStatusPending || transitionErr.ToStatus != entities.OrderStatusCompleted {
			t.Fatalf("unexpected error fields: %+v", transitionErr)
		}

		if err := uc.Pay(ctx, o.OrderID); err != nil {
			t.Fatalf("pending -> paid should pass: %v", err)
		}
		if err := uc.Complete(ctx, o.OrderID); err != nil {
			t.Fatalf("paid -> completed should pass: %v", err)
		}
		if err := uc.Cancel(ctx, o.OrderID); err == nil {
			t.Fatalf("completed -> cancelled should fail")
		}
	})
}

func TestOrderUseCase_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	store := repository.NewKVMemoryRepository()
	uc := newTestOrderUseCase(store)

	a := uc.Create(ctx, sampleInput(10, 1))
	b := uc.Create(ctx, sampleInput(20, 1))

	uc.Delete(ctx, "missing")
	if uc.Count() != 2 {
		t.Fatalf("expected 2 orders after deleting unknown id, got %d", uc.Count())
	}

	uc.Delete(ctx, a.OrderID)
	if _, ok := uc.GetByID(a.OrderID); ok {
		t.Fatalf("expected %s to be deleted", a.OrderID)
	}
	if got := storedOrders(t, store, DefaultOrdersStorageKey); len(got) != 1 || got[0].OrderID != b.OrderID {
		t.Fatalf("unexpected persisted orders: %+v", got)
	}

	uc.Clear(ctx)
	if uc.Count() != 0 {
		t.Fatalf("expected empty collection")
	}
	if got := storedOrders(t, store, DefaultOrdersStorageKey); len(got) != 0 {
		t.Fatalf("expected persisted empty list, got %+v", got)
	}
}

func TestOrderUseCase_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key keeps memory", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		uc := newTestOrderUseCase(store)
		uc.Create(ctx, sampleInput(10, 1))
		_ = store.Delete(ctx, DefaultOrdersStorageKey)

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.Count() != 1 {
			t.Fatalf("expected memory to be kept, got %d orders", uc.Count())
		}
	})

	t.Run("restores persisted orders", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		writer := newTestOrderUseCase(store)
		in := sampleInput(10, 1)
		in.HouseInfo.PriceTipBadge = &entities.PriceTipBadge{Text: "Early bird"}
		in.HouseInfo.Image = entities.HouseImage{URL: "https://img.example/1.jpg"}
		paid := writer.Create(ctx, in)
		writer.Create(ctx, sampleInput(25.5, 3))
		if err := writer.Pay(ctx, paid.OrderID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := writer.Save(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reader := newTestOrderUseCase(store)
		if err := reader.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, got := writer.List(), reader.List()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("loaded collection differs:\nwant %+v\ngot  %+v", want, got)
		}
		if got[1].PayTime == nil || got[1].HouseInfo.PriceTipBadge == nil || got[1].GuestInfo.Name != "Ana" {
			t.Fatalf("nested fields lost: %+v", got[1])
		}
	})

	t.Run("invalid json resets to empty", func(t *testing.T) {
		store := repository.NewKVMemoryRepository()
		uc := newTestOrderUseCase(store)
		uc.Create(ctx, sampleInput(10, 1))
		_ = store.Set(ctx, DefaultOrdersStorageKey, "{not json")

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("expected decode failure to be swallowed, got %v", err)
		}
		if uc.Count() != 0 {
			t.Fatalf("expected empty collection, got %d", uc.Count())
		}
	})

	t.Run("store error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), DefaultOrdersStorageKey).Return("", false, errors.New("io"))

		uc := NewOrderUseCase(store, nil)
		if err := uc.Load(ctx); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("nil store", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if err := uc.Load(ctx); !errors.Is(err, ErrOrderStoreUnavailable) {
			t.Fatalf("expected ErrOrderStoreUnavailable, got %v", err)
		}
		if err := uc.Save(ctx); !errors.Is(err, ErrOrderStoreUnavailable) {
			t.Fatalf("expected ErrOrderStoreUnavailable, got %v", err)
		}
	})
}

func TestOrderUseCase_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
	o := uc.Create(ctx, sampleInput(10, 1))
	_ = uc.Pay(ctx, o.OrderID)

	list := uc.List()
	list[0].Status = entities.OrderStatusCancelled
	*list[0].PayTime = time.Time{}

	got, _ := uc.GetByID(o.OrderID)
	if got.Status != entities.OrderStatusPaid || got.PayTime.IsZero() {
		t.Fatalf("store was mutated through a read: %+v", got)
	}
}

func TestOrderUseCase_CurrentTab(t *testing.T) {
	ctx := context.Background()
	uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
	a := uc.Create(ctx, sampleInput(10, 1))
	uc.Create(ctx, sampleInput(20, 1))
	_ = uc.Pay(ctx, a.OrderID)

	if uc.CurrentTab() != entities.OrderStatusAll {
		t.Fatalf("expected default tab all, got %s", uc.CurrentTab())
	}
	if got := uc.FilteredOrders(); len(got) != 2 {
		t.Fatalf("expected 2 orders under all, got %d", len(got))
	}

	if err := uc.SetCurrentTab(entities.OrderStatusPaid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := uc.FilteredOrders(); len(got) != 1 || got[0].OrderID != a.OrderID {
		t.Fatalf("unexpected paid tab: %+v", got)
	}

	if err := uc.SetCurrentTab("refunded"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
	if uc.CurrentTab() != entities.OrderStatusPaid {
		t.Fatalf("tab changed after invalid input")
	}
}

func TestOrderUseCase_NewOrderIDMovesToNextMillisecond(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
	for i := range 1000 {
		uc.orders = append(uc.orders, entities.Order{OrderID: fmt.Sprintf("ORDER%d%03d", now.UnixMilli(), i)})
	}

	done := make(chan string, 1)
	go func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		done <- uc.newOrderIDLocked(now, nil)
	}()

	select {
	case id := <-done:
		wantPrefix := fmt.Sprintf("ORDER%d", now.Add(time.Millisecond).UnixMilli())
		if !strings.HasPrefix(id, wantPrefix) || !orderIDPattern.MatchString(id) {
			t.Fatalf("expected id with prefix %s, got %q", wantPrefix, id)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("id generation did not finish with every suffix taken")
	}
}

func TestOrderUseCase_CreateWithFrozenClockKeepsIDsUnique(t *testing.T) {
	ctx := context.Background()
	uc := NewOrderUseCase(nil, nil,
		WithClock(fixedClock(time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))),
		WithRand(rand.New(rand.NewPCG(5, 6))),
	)

	seen := make(map[string]bool, 1100)
	for range 1100 {
		o := uc.Create(ctx, sampleInput(1, 1))
		if seen[o.OrderID] {
			t.Fatalf("duplicate order id %q", o.OrderID)
		}
		seen[o.OrderID] = true
	}
	if uc.Count() != 1100 {
		t.Fatalf("expected 1100 orders, got %d", uc.Count())
	}
}
