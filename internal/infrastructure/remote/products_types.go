package remote

import (
	"encoding/json"
	"fmt"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
)

// productPayload mirrors the wire shape of one product
type productPayload struct {
	ID               int64                `json:"id"`
	Name             string               `json:"name"`
	Slug             string               `json:"slug"`
	SKU              string               `json:"sku"`
	Type             commerce.ProductType `json:"type"`
	Status           string               `json:"status"`
	Price            string               `json:"price"`
	RegularPrice     string               `json:"regular_price"`
	SalePrice        string               `json:"sale_price"`
	OnSale           bool                 `json:"on_sale"`
	Purchasable      bool                 `json:"purchasable"`
	ManageStock      bool                 `json:"manage_stock"`
	StockQuantity    *int64               `json:"stock_quantity"`
	StockStatus      string               `json:"stock_status"`
	ShortDescription string               `json:"short_description"`
	Images           []productImage       `json:"images"`
	DateCreatedGMT   string               `json:"date_created_gmt"`
}

// productImage mirrors one entry of the product image gallery
type productImage struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
}

// toProduct hydrates the payload into a domain product scoped to the site
func (p *productPayload) toProduct(siteID int64) (commerce.Product, error) {
	if p.ID <= 0 {
		return commerce.Product{}, fmt.Errorf("%w: product payload missing id", commerce.ErrInvalidResponse)
	}
	if p.Name == "" {
		return commerce.Product{}, fmt.Errorf("%w: product %d missing name", commerce.ErrInvalidResponse, p.ID)
	}

	product := commerce.Product{
		SiteID:           siteID,
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		SKU:              p.SKU,
		Type:             p.Type,
		StatusKey:        p.Status,
		Price:            parseDecimal(p.Price),
		RegularPrice:     parseDecimal(p.RegularPrice),
		SalePrice:        parseDecimal(p.SalePrice),
		OnSale:           p.OnSale,
		Purchasable:      p.Purchasable,
		ManageStock:      p.ManageStock,
		StockQuantity:    p.StockQuantity,
		StockStatusKey:   p.StockStatus,
		ShortDescription: p.ShortDescription,
		DateCreated:      parseDateTime(p.DateCreatedGMT),
	}
	for _, img := range p.Images {
		if img.Src != "" {
			product.ImageURLs = append(product.ImageURLs, img.Src)
		}
	}
	return product, nil
}

// mapProduct decodes a single-product body
func mapProduct(siteID int64, body []byte) (*commerce.Product, error) {
	var payload productPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse product: %v", commerce.ErrInvalidResponse, err)
	}
	product, err := payload.toProduct(siteID)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// mapProductList decodes a product list body, preserving response order
func mapProductList(siteID int64, body []byte) ([]commerce.Product, error) {
	var payloads []productPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("%w: failed to parse product list: %v", commerce.ErrInvalidResponse, err)
	}
	products := make([]commerce.Product, 0, len(payloads))
	for _, payload := range payloads {
		product, err := payload.toProduct(siteID)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
