package models

// OrderStatus is the order lifecycle state. The happy path runs
// draft -> paid -> accepted -> preparing -> serving -> completed;
// cancelled is reachable from any non-terminal state.
type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderPaid      OrderStatus = "paid"
	OrderAccepted  OrderStatus = "accepted"
	OrderPreparing OrderStatus = "preparing"
	OrderServing   OrderStatus = "serving"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

var orderFlow = map[OrderStatus]OrderStatus{
	OrderDraft:     OrderPaid,
	OrderPaid:      OrderAccepted,
	OrderAccepted:  OrderPreparing,
	OrderPreparing: OrderServing,
	OrderServing:   OrderCompleted,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderDraft, OrderPaid, OrderAccepted, OrderPreparing, OrderServing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransition reports whether moving from s to next is legal.
// A same-status update is not a transition; callers treat it as a no-op.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	if next == OrderCancelled {
		return true
	}
	return orderFlow[s] == next
}

type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemPreparing ItemStatus = "preparing"
	ItemReady     ItemStatus = "ready"
	ItemDelivered ItemStatus = "delivered"
)

type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableReserved    TableStatus = "reserved"
	TableOccupied    TableStatus = "occupied"
	TableMaintenance TableStatus = "maintenance"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableReserved, TableOccupied, TableMaintenance:
		return true
	}
	return false
}
