package entities

import "time"

// OrderStatus represents the lifecycle of a booking order.
//
// Domain notes:
//   - OrderStatusAll is a filter sentinel used by order tabs; it is never stored on an Order.
//   - Wire values are lowercase, matching the persisted order collection.
type OrderStatus string

const (
	OrderStatusAll       OrderStatus = "all"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// StoredOrderStatuses lists every status an Order may carry, in tab order.
var StoredOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsStored reports whether s may be stored on an Order.
func (s OrderStatus) IsStored() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsValid reports whether s is a known status, including the "all" filter.
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusAll || s.IsStored()
}

// HouseImage is the cover picture of a house listing.
type HouseImage struct {
	URL string `json:"url"`
}

// PriceTipBadge is the promotional badge shown next to a listing price.
type PriceTipBadge struct {
	Text string `json:"text,omitempty"`
}

// HouseInfo is the snapshot of a house listing copied onto an Order at creation.
//
// It is held by value so later changes to the listing never reach existing orders.
type HouseInfo struct {
	HouseID       string         `json:"houseId"`
	HouseName     string         `json:"houseName"`
	Image         HouseImage     `json:"image"`
	Location      string         `json:"location"`
	FinalPrice    float64        `json:"finalPrice"`
	ProductPrice  float64        `json:"productPrice"`
	SummaryText   string         `json:"summaryText"`
	PriceTipBadge *PriceTipBadge `json:"priceTipBadge,omitempty"`
}

// GuestInfo identifies who stays.
type GuestInfo struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	GuestCount int    `json:"guestCount"`
}

// Order is one booking held by the local order store.
//
// Persistence model (key-value store):
//   - the whole collection is stored as one JSON array under a single key
//   - field names follow the persisted layout exactly
//
// Pricing:
//   - TotalPrice = HouseInfo.FinalPrice * Nights, computed once at creation.
//   - Nights is authoritative; CheckInDate/CheckOutDate are not cross-checked.
type Order struct {
	OrderID      string      `json:"orderId"`
	HouseInfo    HouseInfo   `json:"houseInfo"`
	CheckInDate  string      `json:"checkInDate"`
	CheckOutDate string      `json:"checkOutDate"`
	Nights       int         `json:"nights"`
	TotalPrice   float64     `json:"totalPrice"`
	Status       OrderStatus `json:"status"`
	CreateTime   time.Time   `json:"createTime"`
	PayTime      *time.Time  `json:"payTime"`
	GuestInfo    GuestInfo   `json:"guestInfo"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	out := o
	if o.PayTime != nil {
		t := *o.PayTime
		out.PayTime = &t
	}
	if o.HouseInfo.PriceTipBadge != nil {
		b := *o.HouseInfo.PriceTipBadge
		out.HouseInfo.PriceTipBadge = &b
	}
	return out
}

// CalculateTotalPrice returns the stored price of a stay.
func CalculateTotalPrice(finalPrice float64, nights int) float64 {
	return finalPrice * float64(nights)
}
