package remote

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/network"
)

// ShipmentTrackings accesses the shipment tracking records of orders.
// The resource lives under the wc/v1 namespace.
type ShipmentTrackings struct {
	Remote
}

// NewShipmentTrackings creates the shipment trackings accessor
func NewShipmentTrackings(dispatcher network.Dispatcher, logger *zap.Logger) *ShipmentTrackings {
	if logger != nil {
		logger = logger.Named("shipment_trackings")
	}
	return &ShipmentTrackings{NewRemote(dispatcher, logger)}
}

// CreateShipmentTrackingOptions describes a tracking with a preset provider
type CreateShipmentTrackingOptions struct {
	// TrackingNumber is the carrier tracking number
	TrackingNumber string `validate:"required"`
	// ProviderName is the preset provider slug or name
	ProviderName string `validate:"required"`
	// DateShipped is the shipment date in 2006-01-02 format, optional
	DateShipped string
}

// CreateCustomShipmentTrackingOptions describes a tracking with a provider
// the site does not know about.
type CreateCustomShipmentTrackingOptions struct {
	// TrackingNumber is the carrier tracking number
	TrackingNumber string `validate:"required"`
	// ProviderName is the free-form provider name
	ProviderName string `validate:"required"`
	// ProviderURL is the tracking page URL for this provider, optional
	ProviderURL string
	// DateShipped is the shipment date in 2006-01-02 format, optional
	DateShipped string
}

// trackingsPath returns the shipment trackings collection path of an order
func trackingsPath(orderID int64) string {
	return fmt.Sprintf("orders/%d/shipment-trackings/", orderID)
}

// List retrieves the order's tracking records in response order. Each record
// is annotated with the given site and order IDs.
func (s *ShipmentTrackings) List(ctx context.Context, siteID, orderID int64) ([]commerce.ShipmentTracking, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if orderID <= 0 {
		return nil, commerce.ErrInvalidOrderID
	}

	req := network.NewRequest(http.MethodGet, siteID, network.APIVersionMark1, trackingsPath(orderID), nil)
	body, err := s.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapShipmentTrackingList(siteID, orderID, body)
}

// Create adds a tracking record with a preset provider and returns it
func (s *ShipmentTrackings) Create(ctx context.Context, siteID, orderID int64, opts CreateShipmentTrackingOptions) (*commerce.ShipmentTracking, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if orderID <= 0 {
		return nil, commerce.ErrInvalidOrderID
	}
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %v", commerce.ErrInvalidArgument, err)
	}

	params := map[string]string{
		"tracking_number":   opts.TrackingNumber,
		"tracking_provider": opts.ProviderName,
	}
	if opts.DateShipped != "" {
		params["date_shipped"] = opts.DateShipped
	}

	req := network.NewRequest(http.MethodPost, siteID, network.APIVersionMark1, trackingsPath(orderID), params)
	body, err := s.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("shipment tracking created",
		zap.Int64("site_id", siteID),
		zap.Int64("order_id", orderID),
		zap.String("provider", opts.ProviderName),
	)
	return mapShipmentTracking(siteID, orderID, body)
}

// CreateWithCustomProvider adds a tracking record with a provider the site
// has no preset for. The call sends only the custom parameter keys; the
// generic tracking_provider key is intentionally absent.
func (s *ShipmentTrackings) CreateWithCustomProvider(ctx context.Context, siteID, orderID int64, opts CreateCustomShipmentTrackingOptions) (*commerce.ShipmentTracking, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if orderID <= 0 {
		return nil, commerce.ErrInvalidOrderID
	}
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %v", commerce.ErrInvalidArgument, err)
	}

	params := map[string]string{
		"tracking_number":          opts.TrackingNumber,
		"custom_tracking_provider": opts.ProviderName,
		"custom_tracking_link":     opts.ProviderURL,
	}
	if opts.DateShipped != "" {
		params["date_shipped"] = opts.DateShipped
	}

	req := network.NewRequest(http.MethodPost, siteID, network.APIVersionMark1, trackingsPath(orderID), params)
	body, err := s.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapShipmentTracking(siteID, orderID, body)
}

// Delete removes a tracking record and returns the deleted record
func (s *ShipmentTrackings) Delete(ctx context.Context, siteID, orderID int64, trackingID string) (*commerce.ShipmentTracking, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if orderID <= 0 {
		return nil, commerce.ErrInvalidOrderID
	}
	if trackingID == "" {
		return nil, fmt.Errorf("%w: empty tracking ID", commerce.ErrInvalidArgument)
	}

	path := trackingsPath(orderID) + trackingID
	req := network.NewRequest(http.MethodDelete, siteID, network.APIVersionMark1, path, nil)
	body, err := s.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("shipment tracking deleted",
		zap.Int64("site_id", siteID),
		zap.Int64("order_id", orderID),
		zap.String("tracking_id", trackingID),
	)
	return mapShipmentTracking(siteID, orderID, body)
}

// ListProviderGroups retrieves the preset provider catalog, grouped by
// country and sorted for stable presentation.
func (s *ShipmentTrackings) ListProviderGroups(ctx context.Context, siteID, orderID int64) ([]commerce.ShipmentTrackingProviderGroup, error) {
	if siteID <= 0 {
		return nil, commerce.ErrInvalidSiteID
	}
	if orderID <= 0 {
		return nil, commerce.ErrInvalidOrderID
	}

	path := trackingsPath(orderID) + "providers"
	req := network.NewRequest(http.MethodGet, siteID, network.APIVersionMark1, path, nil)
	body, err := s.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapProviderGroups(body)
}
