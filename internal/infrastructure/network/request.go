package network

import (
	"fmt"
	"net/url"
	"strings"
)

// APIVersion is the commerce REST API version tag a request targets
type APIVersion string

const (
	// APIVersionNone addresses site endpoints outside the commerce namespace
	APIVersionNone APIVersion = ""
	// APIVersionMark1 addresses the wc/v1 namespace (shipment trackings)
	APIVersionMark1 APIVersion = "wc/v1"
	// APIVersionMark2 addresses the wc/v2 namespace
	APIVersionMark2 APIVersion = "wc/v2"
	// APIVersionMark3 addresses the wc/v3 namespace (orders, products, reports)
	APIVersionMark3 APIVersion = "wc/v3"
	// APIVersionMark4 addresses the wc/v4 namespace (analytics)
	APIVersionMark4 APIVersion = "wc/v4"
)

// Request is an immutable descriptor of one call against the site API
// tunnel. It is constructed per call and discarded after dispatch.
type Request struct {
	// Method is the HTTP method the site endpoint expects
	Method string
	// SiteID scopes the request to one site
	SiteID int64
	// Version is the API namespace the path lives under
	Version APIVersion
	// Path is the resource path within the namespace, e.g. "orders/123"
	Path string
	// Params contains the operation parameters. For GET requests they are
	// encoded into the tunneled query string, otherwise into the body.
	Params map[string]string
}

// NewRequest builds a request descriptor. The parameter map is copied so the
// descriptor stays immutable after construction.
func NewRequest(method string, siteID int64, version APIVersion, path string, params map[string]string) *Request {
	var copied map[string]string
	if len(params) > 0 {
		copied = make(map[string]string, len(params))
		for k, v := range params {
			copied[k] = v
		}
	}
	return &Request{
		Method:  method,
		SiteID:  siteID,
		Version: version,
		Path:    path,
		Params:  copied,
	}
}

// VersionedPath returns the namespaced resource path, e.g. "/wc/v3/orders/123"
func (r *Request) VersionedPath() string {
	path := strings.TrimLeft(r.Path, "/")
	if r.Version == APIVersionNone {
		return "/" + path
	}
	return "/" + string(r.Version) + "/" + path
}

// TunnelPath returns the versioned path with GET parameters encoded into its
// query string, which is how the tunnel forwards them to the site.
func (r *Request) TunnelPath() string {
	path := r.VersionedPath()
	if len(r.Params) == 0 {
		return path
	}
	values := url.Values{}
	for k, v := range r.Params {
		values.Set(k, v)
	}
	return path + "?" + values.Encode()
}

// CacheKey returns a stable identity for the request. url.Values encoding
// sorts parameter names, so equal requests always produce equal keys.
func (r *Request) CacheKey() string {
	return fmt.Sprintf("%s %d %s", r.Method, r.SiteID, r.TunnelPath())
}
