package commerce

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product on a specific site
type Product struct {
	// SiteID identifies the site the product belongs to
	SiteID int64
	// ID is the product identifier on the site
	ID int64
	// Name is the product name
	Name string
	// Slug is the URL slug
	Slug string
	// SKU is the stock keeping unit
	SKU string
	// Type is the product type (forward-compatible enumeration)
	Type ProductType
	// StatusKey is the publication status slug (publish, draft, pending, private)
	StatusKey string
	// Price is the effective price
	Price decimal.Decimal
	// RegularPrice is the non-discounted price
	RegularPrice decimal.Decimal
	// SalePrice is the discounted price, zero when not on sale
	SalePrice decimal.Decimal
	// OnSale indicates the sale price is currently active
	OnSale bool
	// Purchasable indicates the product can currently be bought
	Purchasable bool
	// ManageStock indicates stock levels are tracked
	ManageStock bool
	// StockQuantity is the tracked stock level, nil when not managed
	StockQuantity *int64
	// StockStatusKey is the stock status slug (instock, outofstock, onbackorder)
	StockStatusKey string
	// ShortDescription is the summary text
	ShortDescription string
	// ImageURLs contains the product image URLs in display order
	ImageURLs []string
	// DateCreated is when the product was created (GMT)
	DateCreated time.Time
}
