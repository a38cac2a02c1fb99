package tokencache

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

var ErrCacheMiss = errors.New("cache miss")

// Key derives the cache key for one credential set. The client secret is not
// part of the key so it never reaches a shared store.
func Key(baseURL, clientID string) string {
	return fmt.Sprintf("paypal:token:%016x", xxhash.Sum64String(baseURL+"|"+clientID))
}
