package commerce

import "errors"

var (
	// Remote/transport errors
	ErrRemoteUnavailable = errors.New("commerce: remote temporarily unavailable")
	ErrRequestFailed     = errors.New("commerce: remote request failed")
	ErrInvalidResponse   = errors.New("commerce: invalid remote response")
	ErrUnauthorized      = errors.New("commerce: remote authentication failed")

	// Resource errors
	ErrNotFound        = errors.New("commerce: resource not found")
	ErrInvalidSiteID   = errors.New("commerce: invalid site ID")
	ErrInvalidOrderID  = errors.New("commerce: invalid order ID")
	ErrInvalidArgument = errors.New("commerce: invalid argument")
)
