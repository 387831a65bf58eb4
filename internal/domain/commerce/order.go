package commerce

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents an order on a specific site
type Order struct {
	// SiteID identifies the site the order belongs to
	SiteID int64
	// ID is the order identifier on the site
	ID int64
	// Number is the customer-facing order number
	Number string
	// Status is the current order status slug
	Status OrderStatus
	// Currency is the ISO currency code
	Currency string
	// Total is the grand total charged to the customer
	Total decimal.Decimal
	// TotalTax is the total tax amount
	TotalTax decimal.Decimal
	// ShippingTotal is the shipping cost
	ShippingTotal decimal.Decimal
	// DiscountTotal is the total discount applied
	DiscountTotal decimal.Decimal
	// PaymentMethodTitle is the human-readable payment method
	PaymentMethodTitle string
	// CustomerID is the site-local customer identifier (0 for guests)
	CustomerID int64
	// CustomerNote is the note left by the customer at checkout
	CustomerNote string
	// Billing is the billing address
	Billing Address
	// Shipping is the shipping address
	Shipping Address
	// Items contains the order line items
	Items []OrderItem
	// DateCreated is when the order was placed (GMT)
	DateCreated time.Time
	// DateModified is when the order was last modified (GMT)
	DateModified time.Time
	// DatePaid is when payment was received (GMT), nil if unpaid
	DatePaid *time.Time
}

// OrderItem represents a line item within an order
type OrderItem struct {
	// ID is the line item identifier
	ID int64
	// ProductID is the purchased product
	ProductID int64
	// VariationID is the purchased variation (0 for simple products)
	VariationID int64
	// Name is the product name at purchase time
	Name string
	// SKU is the stock keeping unit at purchase time
	SKU string
	// Quantity is the purchased quantity
	Quantity decimal.Decimal
	// Price is the unit price
	Price decimal.Decimal
	// Subtotal is the line total before discounts
	Subtotal decimal.Decimal
	// Total is the line total after discounts
	Total decimal.Decimal
	// TotalTax is the tax for this line
	TotalTax decimal.Decimal
}

// Address represents a billing or shipping address
type Address struct {
	FirstName string
	LastName  string
	Company   string
	Address1  string
	Address2  string
	City      string
	State     string
	Postcode  string
	Country   string
	Phone     string
	Email     string
}

// FullName returns the concatenated first and last name
func (a Address) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}
