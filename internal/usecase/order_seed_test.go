package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"my_trip/internal/adapter/persistence/repository"
	"my_trip/internal/domain/entities"
	mock_interfaces "my_trip/internal/usecase/interfaces/mocks"

	"github.com/sebdah/goldie/v2"
	"go.uber.org/mock/gomock"
)

func TestDefaultOrders_Golden(t *testing.T) {
	b, err := json.MarshalIndent(DefaultOrders(), "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default_orders", append(b, '\n'))
}

func TestDefaultOrders_FreshCopies(t *testing.T) {
	a := DefaultOrders()
	*a[1].PayTime = a[1].PayTime.AddDate(1, 0, 0)

	b := DefaultOrders()
	if b[1].PayTime.Year() != 2024 {
		t.Fatalf("default orders share payTime pointers")
	}
}

func TestOrderUseCase_EnsureSeeded(t *testing.T) {
	ctx := context.Background()

	t.Run("no listings uses default orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houses := mock_interfaces.NewMockIHouseListingSource(ctrl)
		houses.EXPECT().Listings().Return(nil)

		store := repository.NewKVMemoryRepository()
		uc := NewOrderUseCase(store, houses)
		uc.EnsureSeeded(ctx)

		got := uc.List()
		if !equalIDs(got, "ORDER1698765432001", "ORDER1698765432002", "ORDER1698765432003") {
			t.Fatalf("unexpected seeded ids: %v", orderIDs(got))
		}
		if persisted := storedOrders(t, store, DefaultOrdersStorageKey); len(persisted) != 3 {
			t.Fatalf("expected seeded orders to be persisted")
		}
	})

	t.Run("nil listing source uses default orders", func(t *testing.T) {
		uc := NewOrderUseCase(repository.NewKVMemoryRepository(), nil)
		uc.EnsureSeeded(ctx)
		if uc.Count() != 3 {
			t.Fatalf("expected 3 default orders, got %d", uc.Count())
		}
	})

	t.Run("non empty collection is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houses := mock_interfaces.NewMockIHouseListingSource(ctrl)
		houses.EXPECT().Listings().Return(nil).AnyTimes()

		uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
		uc.houses = houses
		o := uc.Create(ctx, sampleInput(10, 1))
		uc.EnsureSeeded(ctx)
		if got := uc.List(); !equalIDs(got, o.OrderID) {
			t.Fatalf("expected existing order only, got %v", orderIDs(got))
		}
	})

	t.Run("samples houses from listings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houses := mock_interfaces.NewMockIHouseListingSource(ctrl)
		houses.EXPECT().Listings().Return([]entities.HouseListing{
			listing("a", 100), listing("b", 200), listing("c", 300), listing("d", 400), {CellType: 3},
		})

		uc := newTestOrderUseCase(repository.NewKVMemoryRepository())
		uc.houses = houses
		uc.EnsureSeeded(ctx)

		got := uc.List()
		if len(got) != 3 {
			t.Fatalf("expected 3 seeded orders, got %d", len(got))
		}
		wantStatus := []entities.OrderStatus{entities.OrderStatusPending, entities.OrderStatusPaid, entities.OrderStatusCompleted}
		wantNights := []int{3, 2, 3}
		seen := map[string]bool{}
		for i, o := range got {
			if o.Status != wantStatus[i] || o.Nights != wantNights[i] {
				t.Fatalf("order %d: unexpected template %s/%d", i, o.Status, o.Nights)
			}
			if o.TotalPrice != o.HouseInfo.FinalPrice*float64(o.Nights) {
				t.Fatalf("order %d: total %v does not match price %v x %d", i, o.TotalPrice, o.HouseInfo.FinalPrice, o.Nights)
			}
			if !orderIDPattern.MatchString(o.OrderID) || seen[o.OrderID] {
				t.Fatalf("order %d: bad or duplicate id %q", i, o.OrderID)
			}
			seen[o.OrderID] = true
			if seen[o.HouseInfo.HouseID] {
				t.Fatalf("house %s used twice", o.HouseInfo.HouseID)
			}
			seen[o.HouseInfo.HouseID] = true
		}
		if got[0].PayTime != nil || got[1].PayTime == nil {
			t.Fatalf("payTime must follow the template")
		}
	})

	t.Run("listings without houses seed nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houses := mock_interfaces.NewMockIHouseListingSource(ctrl)
		houses.EXPECT().Listings().Return([]entities.HouseListing{{CellType: 1}})

		uc := NewOrderUseCase(repository.NewKVMemoryRepository(), houses)
		uc.EnsureSeeded(ctx)
		if uc.Count() != 0 {
			t.Fatalf("expected empty collection, got %d", uc.Count())
		}
	})
}
