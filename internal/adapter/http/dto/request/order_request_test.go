package request

import (
	"errors"
	"testing"

	"my_trip/internal/domain/entities"
)

func TestParseStatusFilter(t *testing.T) {
	cases := map[string]entities.OrderStatus{
		"":          entities.OrderStatusAll,
		"  ":        entities.OrderStatusAll,
		"all":       entities.OrderStatusAll,
		" Paid ":    entities.OrderStatusPaid,
		"CANCELLED": entities.OrderStatusCancelled,
		"completed": entities.OrderStatusCompleted,
		"pending":   entities.OrderStatusPending,
	}
	for raw, want := range cases {
		got, err := ParseStatusFilter(raw)
		if err != nil {
			t.Fatalf("ParseStatusFilter(%q): unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseStatusFilter(%q) = %q, want %q", raw, got, want)
		}
	}

	if _, err := ParseStatusFilter("refunded"); !errors.Is(err, ErrInvalidStatusFilter) {
		t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
	}
}

func TestSearchOrdersQuery_ToParams(t *testing.T) {
	q := SearchOrdersQuery{Keyword: "Sanya", StartDate: " 2024-01-01 ", EndDate: "2024-12-31", Status: "paid"}
	params, err := q.ToParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Keyword != "Sanya" || params.StartDate != "2024-01-01" || params.EndDate != "2024-12-31" {
		t.Fatalf("unexpected params: %+v", params)
	}
	if params.Status != entities.OrderStatusPaid {
		t.Fatalf("expected paid, got %q", params.Status)
	}

	if _, err := (SearchOrdersQuery{Status: "lost"}).ToParams(); !errors.Is(err, ErrInvalidStatusFilter) {
		t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
	}
}

func TestCreateOrderRequest_ToInput(t *testing.T) {
	r := CreateOrderRequest{
		HouseInfo:    entities.HouseInfo{HouseID: "h1", FinalPrice: 100},
		CheckInDate:  " 2024-03-10",
		CheckOutDate: "2024-03-12 ",
		Nights:       2,
		GuestInfo:    entities.GuestInfo{Name: "Ana", GuestCount: 2},
	}
	in := r.ToInput()
	if in.CheckInDate != "2024-03-10" || in.CheckOutDate != "2024-03-12" {
		t.Fatalf("dates not trimmed: %+v", in)
	}
	if in.HouseInfo.HouseID != "h1" || in.Nights != 2 || in.GuestInfo.Name != "Ana" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
