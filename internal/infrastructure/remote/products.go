package remote

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/network"
)

const (
	productsDefaultPageSize = 25
	productsMaxPageSize     = 100
)

// Products accesses the products resource family
type Products struct {
	Remote
}

// NewProducts creates the products accessor
func NewProducts(dispatcher network.Dispatcher, logger *zap.Logger) *Products {
	if logger != nil {
		logger = logger.Named("products")
	}
	return &Products{NewRemote(dispatcher, logger)}
}

// ListProductsOptions narrows a product listing
type ListProductsOptions struct {
	// Keyword searches product names and SKUs
	Keyword string
	// Page is the 1-indexed page number
	Page int
	// PageSize is the number of products per page
	PageSize int
}

// List retrieves a page of the site's products
func (p *Products) List(ctx context.Context, siteID int64, opts ListProductsOptions) ([]commerce.Product, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 || opts.PageSize > productsMaxPageSize {
		opts.PageSize = productsDefaultPageSize
	}

	params := map[string]string{
		"page":     strconv.Itoa(opts.Page),
		"per_page": strconv.Itoa(opts.PageSize),
	}
	if opts.Keyword != "" {
		params["search"] = opts.Keyword
	}

	req := network.NewRequest(http.MethodGet, siteID, network.APIVersionMark3, "products", params)
	body, err := p.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapProductList(siteID, body)
}

// Get retrieves a single product
func (p *Products) Get(ctx context.Context, siteID, productID int64) (*commerce.Product, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if productID <= 0 {
		return nil, fmt.Errorf("%w: invalid product ID %d", commerce.ErrInvalidArgument, productID)
	}

	path := fmt.Sprintf("products/%d", productID)
	req := network.NewRequest(http.MethodGet, siteID, network.APIVersionMark3, path, nil)
	body, err := p.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapProduct(siteID, body)
}
