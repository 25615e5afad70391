package usecase

import (
	"strings"

	"my_trip/internal/domain/entities"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// SearchParams narrows the order collection. Empty fields do not filter.
// StartDate and EndDate bound CheckInDate inclusively and compare as ISO dates.
type SearchParams struct {
	Keyword   string
	Status    entities.OrderStatus
	StartDate string
	EndDate   string
}

// OrderStatistics summarises the collection per status. Counts includes "all".
type OrderStatistics struct {
	Total       int                              `json:"total"`
	Counts      map[entities.OrderStatus]int     `json:"counts"`
	TotalAmount map[entities.OrderStatus]float64 `json:"totalAmount"`
}

// FilterByStatus returns the orders visible under tab, keeping their relative order.
func FilterByStatus(orders []entities.Order, tab entities.OrderStatus) []entities.Order {
	if tab == entities.OrderStatusAll {
		return cloneOrders(orders)
	}
	out := make([]entities.Order, 0, len(orders))
	for i := range orders {
		if orders[i].Status == tab {
			out = append(out, orders[i].Clone())
		}
	}
	return out
}

// CountByStatus counts orders per stored status plus "all". Statuses outside the
// stored set are ignored.
func CountByStatus(orders []entities.Order) map[entities.OrderStatus]int {
	counts := make(map[entities.OrderStatus]int, len(entities.StoredOrderStatuses)+1)
	counts[entities.OrderStatusAll] = len(orders)
	for _, s := range entities.StoredOrderStatuses {
		counts[s] = 0
	}
	for i := range orders {
		if orders[i].Status.IsStored() {
			counts[orders[i].Status]++
		}
	}
	return counts
}

// HasAnyInStatus treats the "all" tab as any order at all.
func HasAnyInStatus(orders []entities.Order, status entities.OrderStatus) bool {
	if status == entities.OrderStatusAll {
		return len(orders) > 0
	}
	for i := range orders {
		if orders[i].Status == status {
			return true
		}
	}
	return false
}

func SearchOrders(orders []entities.Order, params SearchParams) []entities.Order {
	keyword := strings.ToLower(strings.TrimSpace(params.Keyword))
	filterStatus := params.Status != "" && params.Status != entities.OrderStatusAll

	out := make([]entities.Order, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if filterStatus && o.Status != params.Status {
			continue
		}
		if params.StartDate != "" && o.CheckInDate < params.StartDate {
			continue
		}
		if params.EndDate != "" && o.CheckInDate > params.EndDate {
			continue
		}
		if keyword != "" && !matchesKeyword(o, keyword) {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

func matchesKeyword(o *entities.Order, keyword string) bool {
	return strings.Contains(strings.ToLower(o.OrderID), keyword) ||
		strings.Contains(strings.ToLower(o.HouseInfo.HouseName), keyword) ||
		strings.Contains(strings.ToLower(o.HouseInfo.Location), keyword)
}

// Paginate returns one page of orders and the size of the whole input. Page and
// pageSize below 1 fall back to DefaultPage and DefaultPageSize.
func Paginate(orders []entities.Order, page, pageSize int) ([]entities.Order, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(orders)
	start := (page - 1) * pageSize
	if start >= total {
		return []entities.Order{}, total
	}
	end := min(start+pageSize, total)
	return cloneOrders(orders[start:end]), total
}

func SummarizeOrders(orders []entities.Order) OrderStatistics {
	amounts := make(map[entities.OrderStatus]float64, len(entities.StoredOrderStatuses)+1)
	amounts[entities.OrderStatusAll] = 0
	for _, s := range entities.StoredOrderStatuses {
		amounts[s] = 0
	}
	for i := range orders {
		if !orders[i].Status.IsStored() {
			continue
		}
		amounts[orders[i].Status] += orders[i].TotalPrice
		amounts[entities.OrderStatusAll] += orders[i].TotalPrice
	}
	return OrderStatistics{
		Total:       len(orders),
		Counts:      CountByStatus(orders),
		TotalAmount: amounts,
	}
}

func (u *OrderUseCase) Count() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.orders)
}

func (u *OrderUseCase) FilteredBy(tab entities.OrderStatus) []entities.Order {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return FilterByStatus(u.orders, tab)
}

func (u *OrderUseCase) StatusCounts() map[entities.OrderStatus]int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return CountByStatus(u.orders)
}

func (u *OrderUseCase) HasAny(status entities.OrderStatus) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return HasAnyInStatus(u.orders, status)
}

func (u *OrderUseCase) Search(params SearchParams) []entities.Order {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return SearchOrders(u.orders, params)
}

func (u *OrderUseCase) Statistics() OrderStatistics {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return SummarizeOrders(u.orders)
}

// SetCurrentTab selects the tab used by FilteredOrders. Unknown tabs are rejected.
func (u *OrderUseCase) SetCurrentTab(tab entities.OrderStatus) error {
	if !tab.IsValid() {
		return ErrInvalidOrderStatus
	}
	u.mu.Lock()
	u.currentTab = tab
	u.mu.Unlock()
	return nil
}

func (u *OrderUseCase) CurrentTab() entities.OrderStatus {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.currentTab
}

func (u *OrderUseCase) FilteredOrders() []entities.Order {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return FilterByStatus(u.orders, u.currentTab)
}
