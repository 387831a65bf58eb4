package commerce

import "time"

// ShipmentTracking represents a single tracking record attached to an order.
//
// The API payload does not carry the site or order identifiers; the mapper
// hydrates them from the request that produced the record.
type ShipmentTracking struct {
	// SiteID identifies the site the order belongs to
	SiteID int64
	// OrderID identifies the order the tracking is attached to
	OrderID int64
	// TrackingID is the tracking record identifier
	TrackingID string
	// TrackingNumber is the carrier tracking number
	TrackingNumber string
	// ProviderName is the shipment provider name
	ProviderName string
	// TrackingURL is the carrier tracking page for this shipment
	TrackingURL string
	// DateShipped is the shipment date, nil when not provided
	DateShipped *time.Time
}

// ShipmentTrackingProviderGroup is a set of preset shipment providers for
// one country, flattened from the provider catalog response.
type ShipmentTrackingProviderGroup struct {
	// Name is the group (country) name
	Name string
	// Providers contains the group's providers sorted by name
	Providers []ShipmentTrackingProvider
}

// ShipmentTrackingProvider is a preset shipment provider
type ShipmentTrackingProvider struct {
	// Name is the provider name
	Name string
	// URL is the provider's tracking URL template
	URL string
}
