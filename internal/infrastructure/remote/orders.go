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

// Default pagination for order listing
const (
	ordersDefaultPageSize = 25
	ordersMaxPageSize     = 100
)

// Orders accesses the orders resource family
type Orders struct {
	Remote
}

// NewOrders creates the orders accessor
func NewOrders(dispatcher network.Dispatcher, logger *zap.Logger) *Orders {
	if logger != nil {
		logger = logger.Named("orders")
	}
	return &Orders{NewRemote(dispatcher, logger)}
}

// ListOrdersOptions narrows an order listing
type ListOrdersOptions struct {
	// Status filters by order status, all statuses when empty
	Status commerce.OrderStatus
	// Keyword searches order contents
	Keyword string
	// Page is the 1-indexed page number
	Page int
	// PageSize is the number of orders per page
	PageSize int
}

// List retrieves a page of the site's orders, newest first
func (o *Orders) List(ctx context.Context, siteID int64, opts ListOrdersOptions) ([]commerce.Order, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 || opts.PageSize > ordersMaxPageSize {
		opts.PageSize = ordersDefaultPageSize
	}

	params := map[string]string{
		"page":     strconv.Itoa(opts.Page),
		"per_page": strconv.Itoa(opts.PageSize),
		"status":   "any",
	}
	if opts.Status != "" {
		params["status"] = opts.Status.String()
	}
	if opts.Keyword != "" {
		params["search"] = opts.Keyword
	}

	req := network.NewRequest(http.MethodGet, siteID, network.APIVersionMark3, "orders", params)
	body, err := o.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapOrderList(siteID, body)
}

// Get retrieves a single order
func (o *Orders) Get(ctx context.Context, siteID, orderID int64) (*commerce.Order, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if orderID <= 0 {
		return nil, commerce.ErrInvalidOrderID
	}

	path := fmt.Sprintf("orders/%d", orderID)
	req := network.NewRequest(http.MethodGet, siteID, network.APIVersionMark3, path, nil)
	body, err := o.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapOrder(siteID, body)
}

// UpdateStatus sets the order's status and returns the updated order
func (o *Orders) UpdateStatus(ctx context.Context, siteID, orderID int64, status commerce.OrderStatus) (*commerce.Order, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if orderID <= 0 {
		return nil, commerce.ErrInvalidOrderID
	}
	if status == "" {
		return nil, fmt.Errorf("%w: empty order status", commerce.ErrInvalidArgument)
	}

	path := fmt.Sprintf("orders/%d", orderID)
	params := map[string]string{"status": status.String()}
	req := network.NewRequest(http.MethodPost, siteID, network.APIVersionMark3, path, params)
	body, err := o.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("order status updated",
		zap.Int64("site_id", siteID),
		zap.Int64("order_id", orderID),
		zap.String("status", status.String()),
	)
	return mapOrder(siteID, body)
}
