package network

import "github.com/go-playground/validator/v10"

const (
	// DefaultBaseURL is the production API tunnel host
	DefaultBaseURL = "https://public-api.wordpress.com"
	// defaultUserAgent identifies this client when none is configured
	defaultUserAgent = "woocommerce-go/1.0"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Credentials holds what the dispatcher needs to authenticate against the
// API tunnel.
type Credentials struct {
	// AuthToken is the bearer token sent on every request
	AuthToken string `validate:"required"`
	// BaseURL is the tunnel host, production by default
	BaseURL string `validate:"required,url"`
	// UserAgent is sent as the User-Agent header
	UserAgent string
}

// NewCredentials creates credentials against the production tunnel host
func NewCredentials(authToken string) *Credentials {
	return &Credentials{
		AuthToken: authToken,
		BaseURL:   DefaultBaseURL,
		UserAgent: defaultUserAgent,
	}
}

// Validate validates the credentials and fills optional defaults
func (c *Credentials) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return validate.Struct(c)
}
