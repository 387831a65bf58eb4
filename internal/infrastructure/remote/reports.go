package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/network"
)

// Reports accesses the order reports resource family
type Reports struct {
	Remote
}

// NewReports creates the reports accessor
func NewReports(dispatcher network.Dispatcher, logger *zap.Logger) *Reports {
	if logger != nil {
		logger = logger.Named("reports")
	}
	return &Reports{NewRemote(dispatcher, logger)}
}

// orderTotalPayload mirrors one row of the order totals report
type orderTotalPayload struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// OrderTotals retrieves the number of orders per status, in report order.
// Status slugs the client does not know about pass through verbatim.
func (r *Reports) OrderTotals(ctx context.Context, siteID int64) ([]commerce.OrderStatusTotal, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}

	req := network.NewRequest(http.MethodGet, siteID, network.APIVersionMark3, "reports/orders/totals", nil)
	body, err := r.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapOrderTotals(body)
}

// mapOrderTotals decodes the order totals report body
func mapOrderTotals(body []byte) ([]commerce.OrderStatusTotal, error) {
	var payloads []orderTotalPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("%w: failed to parse order totals: %v", commerce.ErrInvalidResponse, err)
	}
	totals := make([]commerce.OrderStatusTotal, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Slug == "" {
			return nil, fmt.Errorf("%w: order total row missing slug", commerce.ErrInvalidResponse)
		}
		totals = append(totals, commerce.OrderStatusTotal{
			Status: commerce.OrderStatus(payload.Slug),
			Name:   payload.Name,
			Total:  payload.Total,
		})
	}
	return totals, nil
}
