package remote

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
)

// shipmentTrackingPayload mirrors the wire shape of one tracking record.
// Site and order identifiers are absent on the wire and hydrated by the
// mapper from the request that produced the record.
type shipmentTrackingPayload struct {
	TrackingID       string `json:"tracking_id"`
	TrackingNumber   string `json:"tracking_number"`
	TrackingProvider string `json:"tracking_provider"`
	TrackingLink     string `json:"tracking_link"`
	DateShipped      string `json:"date_shipped"`
}

// toTracking hydrates the payload into a domain tracking record
func (p *shipmentTrackingPayload) toTracking(siteID, orderID int64) (commerce.ShipmentTracking, error) {
	if p.TrackingID == "" {
		return commerce.ShipmentTracking{}, fmt.Errorf("%w: tracking payload missing tracking_id", commerce.ErrInvalidResponse)
	}
	if p.TrackingNumber == "" {
		return commerce.ShipmentTracking{}, fmt.Errorf("%w: tracking %s missing tracking_number", commerce.ErrInvalidResponse, p.TrackingID)
	}
	return commerce.ShipmentTracking{
		SiteID:         siteID,
		OrderID:        orderID,
		TrackingID:     p.TrackingID,
		TrackingNumber: p.TrackingNumber,
		ProviderName:   p.TrackingProvider,
		TrackingURL:    p.TrackingLink,
		DateShipped:    parseOptionalDate(p.DateShipped),
	}, nil
}

// mapShipmentTracking decodes a single tracking record body
func mapShipmentTracking(siteID, orderID int64, body []byte) (*commerce.ShipmentTracking, error) {
	var payload shipmentTrackingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse shipment tracking: %v", commerce.ErrInvalidResponse, err)
	}
	tracking, err := payload.toTracking(siteID, orderID)
	if err != nil {
		return nil, err
	}
	return &tracking, nil
}

// mapShipmentTrackingList decodes a tracking list body, preserving response
// order.
func mapShipmentTrackingList(siteID, orderID int64, body []byte) ([]commerce.ShipmentTracking, error) {
	var payloads []shipmentTrackingPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("%w: failed to parse shipment tracking list: %v", commerce.ErrInvalidResponse, err)
	}
	trackings := make([]commerce.ShipmentTracking, 0, len(payloads))
	for _, payload := range payloads {
		tracking, err := payload.toTracking(siteID, orderID)
		if err != nil {
			return nil, err
		}
		trackings = append(trackings, tracking)
	}
	return trackings, nil
}

// mapProviderGroups flattens the nested country -> provider -> URL catalog
// into sorted groups.
func mapProviderGroups(body []byte) ([]commerce.ShipmentTrackingProviderGroup, error) {
	var catalog map[string]map[string]string
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("%w: failed to parse provider catalog: %v", commerce.ErrInvalidResponse, err)
	}

	groups := make([]commerce.ShipmentTrackingProviderGroup, 0, len(catalog))
	for country, providers := range catalog {
		group := commerce.ShipmentTrackingProviderGroup{
			Name:      country,
			Providers: make([]commerce.ShipmentTrackingProvider, 0, len(providers)),
		}
		for name, url := range providers {
			group.Providers = append(group.Providers, commerce.ShipmentTrackingProvider{Name: name, URL: url})
		}
		sort.Slice(group.Providers, func(i, j int) bool {
			return group.Providers[i].Name < group.Providers[j].Name
		})
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})
	return groups, nil
}
