// Package remote implements the typed resource accessors of the commerce
// API. Each accessor embeds Remote, builds exactly one request descriptor per
// operation, dispatches it through the injected network.Dispatcher, and maps
// the response body into domain values.
package remote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/network"
)

// API timestamp layouts. The site reports naive GMT timestamps.
const (
	apiDateTimeFormat = "2006-01-02T15:04:05"
	apiDateFormat     = "2006-01-02"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Remote is the shared base of every resource accessor
type Remote struct {
	dispatcher network.Dispatcher
	logger     *zap.Logger
}

// NewRemote creates the accessor base. A nil logger disables logging.
func NewRemote(dispatcher network.Dispatcher, logger *zap.Logger) Remote {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Remote{dispatcher: dispatcher, logger: logger}
}

// dispatch sends the request and unwraps the tunnel envelope
func (r Remote) dispatch(ctx context.Context, req *network.Request) ([]byte, error) {
	body, err := r.dispatcher.Dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return extractPayload(body), nil
}

// envelope is the wrapper the tunnel puts around site responses
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// extractPayload unwraps {"data": ...} envelopes, falling back to the bare
// body for responses that were not tunneled.
func extractPayload(body []byte) []byte {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return env.Data
	}
	return body
}

// parseDecimal safely parses a string amount, Zero on malformed input
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDateTime parses a naive GMT timestamp, zero time on malformed input
func parseDateTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(apiDateTimeFormat, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseOptionalDateTime parses a nullable timestamp, nil when absent
func parseOptionalDateTime(s string) *time.Time {
	t := parseDateTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

// parseOptionalDate parses a nullable day-granularity date, nil when absent
func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(apiDateFormat, s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}
