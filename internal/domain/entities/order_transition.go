package entities

// orderTransitions is the table of legal moves used when strict transitions are enabled.
// Writing the current status again is always accepted.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransitionTo reports whether from -> to is a legal move in the strict table.
func CanTransitionTo(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidStatusTransitionError is returned when a strict transition policy rejects a move.
type InvalidStatusTransitionError struct {
	OrderID    string
	FromStatus OrderStatus
	ToStatus   OrderStatus
}

func (e *InvalidStatusTransitionError) Error() string {
	return "invalid status transition for order " + e.OrderID + ": cannot transition from " + string(e.FromStatus) + " to " + string(e.ToStatus)
}
