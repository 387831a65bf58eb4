package remote

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
)

// orderPayload mirrors the wire shape of one order
type orderPayload struct {
	ID                 int64                `json:"id"`
	Number             string               `json:"number"`
	Status             commerce.OrderStatus `json:"status"`
	Currency           string               `json:"currency"`
	Total              string               `json:"total"`
	TotalTax           string               `json:"total_tax"`
	ShippingTotal      string               `json:"shipping_total"`
	DiscountTotal      string               `json:"discount_total"`
	PaymentMethodTitle string               `json:"payment_method_title"`
	CustomerID         int64                `json:"customer_id"`
	CustomerNote       string               `json:"customer_note"`
	DateCreatedGMT     string               `json:"date_created_gmt"`
	DateModifiedGMT    string               `json:"date_modified_gmt"`
	DatePaidGMT        string               `json:"date_paid_gmt"`
	Billing            addressPayload       `json:"billing"`
	Shipping           addressPayload       `json:"shipping"`
	LineItems          []orderItemPayload   `json:"line_items"`
}

// addressPayload mirrors the wire shape of a billing/shipping address
type addressPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// orderItemPayload mirrors the wire shape of an order line item. Quantity is
// a JSON number that may be fractional (weight-based line items).
type orderItemPayload struct {
	ID          int64       `json:"id"`
	ProductID   int64       `json:"product_id"`
	VariationID int64       `json:"variation_id"`
	Name        string      `json:"name"`
	SKU         string      `json:"sku"`
	Quantity    json.Number `json:"quantity"`
	Price       float64     `json:"price"`
	Subtotal    string      `json:"subtotal"`
	Total       string      `json:"total"`
	TotalTax    string      `json:"total_tax"`
}

// toOrder hydrates the payload into a domain order scoped to the site
func (p *orderPayload) toOrder(siteID int64) (commerce.Order, error) {
	if p.ID <= 0 {
		return commerce.Order{}, fmt.Errorf("%w: order payload missing id", commerce.ErrInvalidResponse)
	}
	if p.Status == "" {
		return commerce.Order{}, fmt.Errorf("%w: order %d missing status", commerce.ErrInvalidResponse, p.ID)
	}

	order := commerce.Order{
		SiteID:             siteID,
		ID:                 p.ID,
		Number:             p.Number,
		Status:             p.Status,
		Currency:           p.Currency,
		Total:              parseDecimal(p.Total),
		TotalTax:           parseDecimal(p.TotalTax),
		ShippingTotal:      parseDecimal(p.ShippingTotal),
		DiscountTotal:      parseDecimal(p.DiscountTotal),
		PaymentMethodTitle: p.PaymentMethodTitle,
		CustomerID:         p.CustomerID,
		CustomerNote:       p.CustomerNote,
		Billing:            p.Billing.toAddress(),
		Shipping:           p.Shipping.toAddress(),
		Items:              make([]commerce.OrderItem, 0, len(p.LineItems)),
		DateCreated:        parseDateTime(p.DateCreatedGMT),
		DateModified:       parseDateTime(p.DateModifiedGMT),
		DatePaid:           parseOptionalDateTime(p.DatePaidGMT),
	}
	for _, item := range p.LineItems {
		order.Items = append(order.Items, commerce.OrderItem{
			ID:          item.ID,
			ProductID:   item.ProductID,
			VariationID: item.VariationID,
			Name:        item.Name,
			SKU:         item.SKU,
			Quantity:    parseDecimal(item.Quantity.String()),
			Price:       decimal.NewFromFloat(item.Price),
			Subtotal:    parseDecimal(item.Subtotal),
			Total:       parseDecimal(item.Total),
			TotalTax:    parseDecimal(item.TotalTax),
		})
	}
	return order, nil
}

func (p addressPayload) toAddress() commerce.Address {
	return commerce.Address{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Company:   p.Company,
		Address1:  p.Address1,
		Address2:  p.Address2,
		City:      p.City,
		State:     p.State,
		Postcode:  p.Postcode,
		Country:   p.Country,
		Phone:     p.Phone,
		Email:     p.Email,
	}
}

// mapOrder decodes a single-order body
func mapOrder(siteID int64, body []byte) (*commerce.Order, error) {
	var payload orderPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse order: %v", commerce.ErrInvalidResponse, err)
	}
	order, err := payload.toOrder(siteID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// mapOrderList decodes an order list body, preserving response order
func mapOrderList(siteID int64, body []byte) ([]commerce.Order, error) {
	var payloads []orderPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("%w: failed to parse order list: %v", commerce.ErrInvalidResponse, err)
	}
	orders := make([]commerce.Order, 0, len(payloads))
	for _, payload := range payloads {
		order, err := payload.toOrder(siteID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
