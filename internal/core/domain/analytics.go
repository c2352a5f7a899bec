package domain

// Analytics is the admin dashboard aggregate. It is derived on every read.
type Analytics struct {
	TotalProducts    int `json:"totalProducts"`
	TotalOrders      int `json:"totalOrders"`
	PendingOrders    int `json:"pendingOrders"`
	InProgressOrders int `json:"inProgressOrders"`
	CompletedOrders  int `json:"completedOrders"`
	TotalContacts    int `json:"totalContacts"`
}

// Count adds one order with the given status to the per-status tallies.
// Unknown statuses are not counted anywhere.
func (a *Analytics) Count(status OrderStatus) {
	switch status {
	case OrderPending:
		a.PendingOrders++
	case OrderInProgress:
		a.InProgressOrders++
	case OrderCompleted:
		a.CompletedOrders++
	}
}
