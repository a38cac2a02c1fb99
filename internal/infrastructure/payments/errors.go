package payments

import (
	"errors"
	"fmt"
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
var ErrPayPalGatewayNotConfigured = errors.New("paypal gateway not configured")

// UpstreamAuthError is returned when the token endpoint rejects the
// client-credentials exchange or answers with something that is not a token.
type UpstreamAuthError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamAuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("paypal token request failed status=%d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("paypal token request failed: %v", e.Err)
}

func (e *UpstreamAuthError) Unwrap() error {
	return e.Err
}

// UpstreamResponseError is returned when a provider body is not JSON.
// Text holds the raw body.
type UpstreamResponseError struct {
	StatusCode int
	Text       string
	Err        error
}

func (e *UpstreamResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paypal response unreadable status=%d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("paypal response is not json status=%d: %s", e.StatusCode, e.Text)
}

func (e *UpstreamResponseError) Unwrap() error {
	return e.Err
}
