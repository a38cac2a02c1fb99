package payments

import (
	"context"
	"errors"
	"log"
	"time"

	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/infrastructure/tokencache"
	"concert_tickets/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

// DefaultTokenLeeway is how long before expiry a cached token stops being handed out.
const DefaultTokenLeeway = time.Minute

// CachingTokenProvider reuses tokens until shortly before they expire.
type CachingTokenProvider struct {
	next   interfaces.ITokenProvider
	cache  interfaces.ITokenCache
	key    string
	leeway time.Duration
	now    func() time.Time
	sfg    singleflight.Group
}

var _ interfaces.ITokenProvider = (*CachingTokenProvider)(nil)

func NewCachingTokenProvider(next interfaces.ITokenProvider, cache interfaces.ITokenCache, key string) *CachingTokenProvider {
	return &CachingTokenProvider{
		next:   next,
		cache:  cache,
		key:    key,
		leeway: DefaultTokenLeeway,
		now:    time.Now,
	}
}

func (p *CachingTokenProvider) GetAccessToken(ctx context.Context) (entities.AccessToken, error) {
	tok, err := p.cache.Get(ctx, p.key)
	switch {
	case err == nil && tok.ValidFor(p.now(), p.leeway):
		return tok, nil
	case err != nil && !errors.Is(err, tokencache.ErrCacheMiss):
		log.Printf("[payment][token-cache] cache read failed key=%s err=%v", p.key, err)
	}

	// Concurrent misses for the same credentials share one token request.
	// The refresh ignores the caller's cancellation; each caller waits on its own ctx.
	flightCtx := context.WithoutCancel(ctx)
	ch := p.sfg.DoChan(p.key, func() (interface{}, error) {
		fresh, err := p.next.GetAccessToken(flightCtx)
		if err != nil {
			return entities.AccessToken{}, err
		}
		if ttl := fresh.Expiry.Sub(p.now()) - p.leeway; ttl > 0 {
			if err := p.cache.Set(flightCtx, p.key, fresh, ttl); err != nil {
				log.Printf("[payment][token-cache] cache write failed key=%s err=%v", p.key, err)
			}
		}
		return fresh, nil
	})

	select {
	case <-ctx.Done():
		log.Printf("[payment][token-cache] caller gave up waiting for refresh key=%s err=%v", p.key, ctx.Err())
		return entities.AccessToken{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return entities.AccessToken{}, res.Err
		}
		if res.Shared {
			log.Printf("[payment][token-cache] shared token refresh key=%s", p.key)
		}
		return res.Val.(entities.AccessToken), nil
	}
}

// Invalidate drops the cached token, e.g. after the provider answered 401.
func (p *CachingTokenProvider) Invalidate(ctx context.Context) {
	if err := p.cache.Delete(ctx, p.key); err != nil {
		log.Printf("[payment][token-cache] cache delete failed key=%s err=%v", p.key, err)
	}
}
