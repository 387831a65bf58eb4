package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/logger"
)

// maxResponseSize is the maximum allowed response size from the tunnel (10MB)
const maxResponseSize = 10 * 1024 * 1024

// defaultTimeout is the HTTP client timeout when none is configured
const defaultTimeout = 30 * time.Second

// Dispatcher sends one request descriptor and returns the raw response body.
// Exactly one of (body, error) is non-nil. Implementations are safe for
// concurrent use and perform no retries.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *Request) ([]byte, error)
}

// HTTPDispatcher dispatches requests through the site API tunnel over HTTP
type HTTPDispatcher struct {
	creds  *Credentials
	client *http.Client
	logger *zap.Logger
	tracer trace.Tracer
}

// NewHTTPDispatcher creates a dispatcher with the given credentials. A zero
// timeout falls back to the default; a nil logger disables logging.
func NewHTTPDispatcher(creds *Credentials, timeout time.Duration, logger *zap.Logger) (*HTTPDispatcher, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPDispatcher{
		creds:  creds,
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("network"),
		tracer: otel.Tracer("network"),
	}, nil
}

// Dispatch sends the request and returns the raw response body
func (d *HTTPDispatcher) Dispatch(ctx context.Context, req *Request) ([]byte, error) {
	ctx, span := d.tracer.Start(ctx, "network.dispatch", trace.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.Int64("site.id", req.SiteID),
		attribute.String("api.path", req.VersionedPath()),
	))
	defer span.End()

	httpReq, err := d.buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	// A caller-supplied request ID wins over a generated one, so every
	// request of one logical operation shares the same ID.
	requestID := logger.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("X-Request-ID", requestID)

	log := logger.WithTraceContext(ctx, d.logger).With(
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.Int64("site_id", req.SiteID),
		zap.String("path", req.VersionedPath()),
	)

	resp, err := d.client.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		log.Warn("request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", commerce.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("network: failed to read response: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		err := statusError(resp.StatusCode, body)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("request rejected", zap.Int("status", resp.StatusCode))
		return nil, err
	}

	log.Debug("request completed", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)))
	return body, nil
}

// tunnelURL returns the per-site tunnel endpoint
func (d *HTTPDispatcher) tunnelURL(siteID int64) string {
	return fmt.Sprintf("%s/rest/v1.1/jetpack-blogs/%d/rest-api/", strings.TrimRight(d.creds.BaseURL, "/"), siteID)
}

// buildHTTPRequest renders the descriptor against the tunnel endpoint.
// GET requests carry the site path and parameters in the query string; every
// other method tunnels as a form-encoded POST with the parameters JSON-encoded
// under "body" and the real method appended to the tunneled path.
func (d *HTTPDispatcher) buildHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	endpoint := d.tunnelURL(req.SiteID)

	var httpReq *http.Request
	var err error

	if req.Method == http.MethodGet {
		query := url.Values{}
		query.Set("path", req.TunnelPath())
		query.Set("json", "true")
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	} else {
		tunneledPath := req.VersionedPath() + "&_method=" + strings.ToLower(req.Method)
		form := url.Values{}
		form.Set("path", tunneledPath)
		form.Set("json", "true")
		if len(req.Params) > 0 {
			encoded, merr := json.Marshal(req.Params)
			if merr != nil {
				return nil, fmt.Errorf("network: failed to encode request body: %w", merr)
			}
			form.Set("body", string(encoded))
		}
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if httpReq != nil {
			httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("network: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+d.creds.AuthToken)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", d.creds.UserAgent)
	return httpReq, nil
}

// tunnelError is the error envelope the tunnel returns on failure
type tunnelError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// statusError maps a non-2xx response onto the domain error taxonomy
func statusError(status int, body []byte) error {
	var sentinel error
	switch {
	case status == http.StatusNotFound:
		sentinel = commerce.ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = commerce.ErrUnauthorized
	default:
		sentinel = commerce.ErrRequestFailed
	}

	var envelope tunnelError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Code != "" {
		return fmt.Errorf("%w: HTTP %d: %s - %s", sentinel, status, envelope.Code, envelope.Message)
	}
	return fmt.Errorf("%w: HTTP %d", sentinel, status)
}

// Ensure HTTPDispatcher implements the Dispatcher interface
var _ Dispatcher = (*HTTPDispatcher)(nil)
