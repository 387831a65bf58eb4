package commerce

// OrderStatusTotal is one row of the order totals report: how many orders a
// site has in a given status.
type OrderStatusTotal struct {
	// Status is the order status slug (forward-compatible)
	Status OrderStatus
	// Name is the human-readable status name reported by the site
	Name string
	// Total is the number of orders in this status
	Total int64
}
