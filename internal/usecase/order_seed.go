package usecase

import (
	"context"
	"log"
	"time"

	"my_trip/internal/domain/entities"
)

const (
	seedHouseCount    = 3
	defaultHouseImage = "https://pic.tujia.com/upload/house/day_210315/thumb_1_201503151058074692.jpg"
)

type orderTemplate struct {
	status       entities.OrderStatus
	checkInDate  string
	checkOutDate string
	nights       int
	createTime   time.Time
	payTime      *time.Time
	guest        entities.GuestInfo
}

func utcTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func utcTimePtr(year int, month time.Month, day, hour, minute int) *time.Time {
	t := utcTime(year, month, day, hour, minute)
	return &t
}

// orderTemplates returns fresh copies on each call so seeded orders never share
// a payTime pointer.
func orderTemplates() []orderTemplate {
	return []orderTemplate{
		{
			status:       entities.OrderStatusPending,
			checkInDate:  "2024-01-15",
			checkOutDate: "2024-01-18",
			nights:       3,
			createTime:   utcTime(2024, time.January, 10, 10, 30),
			payTime:      nil,
			guest:        entities.GuestInfo{Name: "张三", Phone: "138****8888", GuestCount: 2},
		},
		{
			status:       entities.OrderStatusPaid,
			checkInDate:  "2024-01-08",
			checkOutDate: "2024-01-10",
			nights:       2,
			createTime:   utcTime(2024, time.January, 5, 14, 20),
			payTime:      utcTimePtr(2024, time.January, 5, 14, 25),
			guest:        entities.GuestInfo{Name: "李四", Phone: "139****9999", GuestCount: 4},
		},
		{
			status:       entities.OrderStatusCompleted,
			checkInDate:  "2023-12-20",
			checkOutDate: "2023-12-23",
			nights:       3,
			createTime:   utcTime(2023, time.December, 15, 9, 15),
			payTime:      utcTimePtr(2023, time.December, 15, 9, 20),
			guest:        entities.GuestInfo{Name: "王五", Phone: "137****7777", GuestCount: 2},
		},
	}
}

func (t orderTemplate) order(orderID string, house entities.HouseInfo, totalPrice float64) entities.Order {
	return entities.Order{
		OrderID:      orderID,
		HouseInfo:    house,
		CheckInDate:  t.checkInDate,
		CheckOutDate: t.checkOutDate,
		Nights:       t.nights,
		TotalPrice:   totalPrice,
		Status:       t.status,
		CreateTime:   t.createTime,
		PayTime:      t.payTime,
		GuestInfo:    t.guest,
	}
}

// DefaultOrders is the fixed demo collection used when no house listings are
// available.
func DefaultOrders() []entities.Order {
	tpl := orderTemplates()
	houses := []entities.HouseInfo{
		{
			HouseID:      "house_001",
			HouseName:    "【网红民宿】三亚海棠湾豪华海景房",
			Image:        entities.HouseImage{URL: defaultHouseImage},
			Location:     "三亚·海棠湾",
			FinalPrice:   588,
			ProductPrice: 688,
			SummaryText:  "豪华海景房，设施齐全，交通便利",
		},
		{
			HouseID:      "house_002",
			HouseName:    "【温泉度假】北京怀柔山景别墅",
			Image:        entities.HouseImage{URL: defaultHouseImage},
			Location:     "北京·怀柔",
			FinalPrice:   388,
			ProductPrice: 488,
			SummaryText:  "山景别墅，温泉度假，环境优美",
		},
		{
			HouseID:      "house_003",
			HouseName:    "【古城民宿】丽江古城特色客栈",
			Image:        entities.HouseImage{URL: defaultHouseImage},
			Location:     "丽江·古城区",
			FinalPrice:   268,
			ProductPrice: 328,
			SummaryText:  "古城特色客栈，文化底蕴深厚",
		},
	}
	ids := []string{"ORDER1698765432001", "ORDER1698765432002", "ORDER1698765432003"}
	totals := []float64{1764, 776, 804}

	orders := make([]entities.Order, len(houses))
	for i := range houses {
		orders[i] = tpl[i].order(ids[i], houses[i], totals[i])
	}
	return orders
}

// EnsureSeeded fills an empty collection with demo orders and persists it.
//
// Houses sampled from the listing source are paired with the demo templates in
// turn. Without listings the fixed DefaultOrders are used. A non-empty
// collection is left alone.
func (u *OrderUseCase) EnsureSeeded(ctx context.Context) {
	var listings []entities.HouseListing
	if u.houses != nil {
		listings = u.houses.Listings()
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.orders) > 0 {
		log.Printf("[order][usecase] seed skipped (not empty) count=%d", len(u.orders))
		return
	}

	if len(listings) == 0 {
		log.Printf("[order][usecase] seed using default orders (no house listings)")
		u.orders = DefaultOrders()
		_ = u.saveLocked(ctx)
		return
	}

	houses := SelectRandomHouses(listings, seedHouseCount, u.rng)
	u.orders = u.ordersFromHousesLocked(houses)
	_ = u.saveLocked(ctx)
	log.Printf("[order][usecase] seed success from house listings count=%d", len(u.orders))
}

func (u *OrderUseCase) ordersFromHousesLocked(houses []entities.HouseData) []entities.Order {
	tpl := orderTemplates()
	now := u.now().UTC()

	orders := make([]entities.Order, 0, len(houses))
	for i, house := range houses {
		t := tpl[i%len(tpl)]
		id := u.newOrderIDLocked(now, orders)
		orders = append(orders, t.order(id, house.ToHouseInfo(), entities.CalculateTotalPrice(house.FinalPrice, t.nights)).Clone())
	}
	return orders
}
