package interfaces

import (
	"context"
	"time"

	"concert_tickets/internal/domain/entities"
)

//go:generate mockgen -source=token_provider_interface.go -destination=mocks/token_provider_interface_mock.go -package=mock_interfaces

// ITokenProvider issues bearer credentials for provider calls.
type ITokenProvider interface {
	GetAccessToken(ctx context.Context) (entities.AccessToken, error)
}

// ITokenCache stores access tokens between requests.
//
// Get returns tokencache.ErrCacheMiss when nothing usable is stored for key.
type ITokenCache interface {
	Get(ctx context.Context, key string) (entities.AccessToken, error)
	Set(ctx context.Context, key string, token entities.AccessToken, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
