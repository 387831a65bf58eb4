package commerce

// OrderStatus represents the status slug of an order.
//
// Known slugs travel unchanged on the wire. Extensions register additional
// statuses server-side, so any other slug is carried through verbatim
// instead of being rejected.
type OrderStatus string

const (
	// OrderStatusPending indicates the order is awaiting payment
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates payment received, awaiting fulfillment
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusOnHold indicates the order is awaiting manual confirmation
	OrderStatusOnHold OrderStatus = "on-hold"
	// OrderStatusCompleted indicates the order is fulfilled and complete
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled indicates the order was cancelled
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusRefunded indicates the order was refunded
	OrderStatusRefunded OrderStatus = "refunded"
	// OrderStatusFailed indicates payment failed or was declined
	OrderStatusFailed OrderStatus = "failed"
)

// IsKnown returns true if the status is one of the known slugs
func (s OrderStatus) IsKnown() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusOnHold,
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded,
		OrderStatusFailed:
		return true
	default:
		return false
	}
}

// IsFinal returns true if the status is a terminal state
func (s OrderStatus) IsFinal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded, OrderStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the status slug
func (s OrderStatus) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the status
func (s OrderStatus) DisplayName() string {
	switch s {
	case OrderStatusPending:
		return "Pending Payment"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusOnHold:
		return "On Hold"
	case OrderStatusCompleted:
		return "Completed"
	case OrderStatusCancelled:
		return "Cancelled"
	case OrderStatusRefunded:
		return "Refunded"
	case OrderStatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}
