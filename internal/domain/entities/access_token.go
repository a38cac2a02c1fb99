package entities

import "time"

// AccessToken is a short-lived bearer credential issued by the payment provider.
type AccessToken struct {
	Value  string
	Expiry time.Time
}

// ValidFor reports whether the token is still usable for at least leeway.
// A zero Expiry means the provider did not say; such tokens are treated as
// single use.
func (t AccessToken) ValidFor(now time.Time, leeway time.Duration) bool {
	if t.Value == "" || t.Expiry.IsZero() {
		return false
	}
	return now.Add(leeway).Before(t.Expiry)
}
