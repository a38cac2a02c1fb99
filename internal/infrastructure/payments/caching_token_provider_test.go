package payments

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/infrastructure/tokencache"
	mock_interfaces "concert_tickets/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCachingTokenProvider(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("reuses cached token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockITokenProvider(ctrl)
		p := NewCachingTokenProvider(next, tokencache.NewMemoryCache(), "k")
		p.now = func() time.Time { return now }

		next.EXPECT().GetAccessToken(gomock.Any()).Return(entities.AccessToken{Value: "A", Expiry: now.Add(time.Hour)}, nil).Times(1)

		for i := 0; i < 3; i++ {
			tok, err := p.GetAccessToken(context.Background())
			if err != nil || tok.Value != "A" {
				t.Fatalf("unexpected token %+v err=%v", tok, err)
			}
		}
	})

	t.Run("token inside leeway is refreshed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockITokenProvider(ctrl)
		p := NewCachingTokenProvider(next, tokencache.NewMemoryCache(), "k")
		p.now = func() time.Time { return now }

		next.EXPECT().GetAccessToken(gomock.Any()).Return(entities.AccessToken{Value: "A", Expiry: now.Add(30 * time.Second)}, nil).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := p.GetAccessToken(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockITokenProvider(ctrl)
		p := NewCachingTokenProvider(next, tokencache.NewMemoryCache(), "k")
		p.now = func() time.Time { return now }

		gomock.InOrder(
			next.EXPECT().GetAccessToken(gomock.Any()).Return(entities.AccessToken{}, ErrMissingPayPalCredentials),
			next.EXPECT().GetAccessToken(gomock.Any()).Return(entities.AccessToken{Value: "B", Expiry: now.Add(time.Hour)}, nil),
		)

		if _, err := p.GetAccessToken(context.Background()); !errors.Is(err, ErrMissingPayPalCredentials) {
			t.Fatalf("expected ErrMissingPayPalCredentials, got %v", err)
		}
		tok, err := p.GetAccessToken(context.Background())
		if err != nil || tok.Value != "B" {
			t.Fatalf("unexpected token %+v err=%v", tok, err)
		}
	})

	t.Run("cache read failure falls through to provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockITokenProvider(ctrl)
		cache := mock_interfaces.NewMockITokenCache(ctrl)
		p := NewCachingTokenProvider(next, cache, "k")
		p.now = func() time.Time { return now }

		cache.EXPECT().Get(gomock.Any(), "k").Return(entities.AccessToken{}, errors.New("redis down"))
		next.EXPECT().GetAccessToken(gomock.Any()).Return(entities.AccessToken{Value: "C", Expiry: now.Add(time.Hour)}, nil)
		cache.EXPECT().Set(gomock.Any(), "k", gomock.Any(), 59*time.Minute).Return(errors.New("redis down"))

		tok, err := p.GetAccessToken(context.Background())
		if err != nil || tok.Value != "C" {
			t.Fatalf("unexpected token %+v err=%v", tok, err)
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockITokenProvider(ctrl)
		p := NewCachingTokenProvider(next, tokencache.NewMemoryCache(), "k")
		p.now = func() time.Time { return now }

		next.EXPECT().GetAccessToken(gomock.Any()).Return(entities.AccessToken{Value: "A", Expiry: now.Add(time.Hour)}, nil).Times(2)

		_, _ = p.GetAccessToken(context.Background())
		p.Invalidate(context.Background())
		_, _ = p.GetAccessToken(context.Background())
	})
}

// slowTokenProvider blocks every token request until release is closed.
type slowTokenProvider struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	once    sync.Once
	token   entities.AccessToken
}

func newSlowTokenProvider(token entities.AccessToken) *slowTokenProvider {
	return &slowTokenProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
		token:   token,
	}
}

func (s *slowTokenProvider) GetAccessToken(ctx context.Context) (entities.AccessToken, error) {
	s.calls.Add(1)
	s.once.Do(func() { close(s.started) })
	<-s.release
	if err := ctx.Err(); err != nil {
		return entities.AccessToken{}, err
	}
	return s.token, nil
}

// countingCache reports every read so tests know a caller is past the cache check.
type countingCache struct {
	*tokencache.MemoryCache
	reads chan struct{}
}

func (c *countingCache) Get(ctx context.Context, key string) (entities.AccessToken, error) {
	tok, err := c.MemoryCache.Get(ctx, key)
	c.reads <- struct{}{}
	return tok, err
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestCachingTokenProvider_ConcurrentMissesShareOneRequest(t *testing.T) {
	const callers = 8
	slow := newSlowTokenProvider(entities.AccessToken{Value: "A", Expiry: time.Now().Add(time.Hour)})
	cache := &countingCache{MemoryCache: tokencache.NewMemoryCache(), reads: make(chan struct{}, callers)}
	p := NewCachingTokenProvider(slow, cache, "k")

	type result struct {
		tok entities.AccessToken
		err error
	}
	results := make(chan result, callers)
	for i := 0; i < callers; i++ {
		go func() {
			tok, err := p.GetAccessToken(context.Background())
			results <- result{tok, err}
		}()
	}

	waitFor(t, slow.started, "token request")
	for i := 0; i < callers; i++ {
		waitFor(t, cache.reads, "cache read")
	}
	// let every caller reach the in-flight refresh
	time.Sleep(50 * time.Millisecond)
	close(slow.release)

	for i := 0; i < callers; i++ {
		r := <-results
		if r.err != nil || r.tok.Value != "A" {
			t.Fatalf("unexpected token %+v err=%v", r.tok, r.err)
		}
	}
	if n := slow.calls.Load(); n != 1 {
		t.Fatalf("expected 1 upstream token request, got %d", n)
	}
}

func TestCachingTokenProvider_CancelledCallerDoesNotFailOthers(t *testing.T) {
	slow := newSlowTokenProvider(entities.AccessToken{Value: "A", Expiry: time.Now().Add(time.Hour)})
	cache := &countingCache{MemoryCache: tokencache.NewMemoryCache(), reads: make(chan struct{}, 2)}
	p := NewCachingTokenProvider(slow, cache, "k")

	ctx1, cancel := context.WithCancel(context.Background())
	defer cancel()

	firstErr := make(chan error, 1)
	go func() {
		_, err := p.GetAccessToken(ctx1)
		firstErr <- err
	}()
	waitFor(t, slow.started, "token request")

	type result struct {
		tok entities.AccessToken
		err error
	}
	second := make(chan result, 1)
	go func() {
		tok, err := p.GetAccessToken(context.Background())
		second <- result{tok, err}
	}()
	waitFor(t, cache.reads, "first cache read")
	waitFor(t, cache.reads, "second cache read")
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case err := <-firstErr:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled for the cancelled caller, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("cancelled caller kept waiting on the refresh")
	}

	close(slow.release)
	r := <-second
	if r.err != nil || r.tok.Value != "A" {
		t.Fatalf("live caller: unexpected token %+v err=%v", r.tok, r.err)
	}
	if n := slow.calls.Load(); n != 1 {
		t.Fatalf("expected 1 upstream token request, got %d", n)
	}

	// the refresh still populated the cache
	tok, err := cache.MemoryCache.Get(context.Background(), "k")
	if err != nil || tok.Value != "A" {
		t.Fatalf("expected cached token, got %+v err=%v", tok, err)
	}
}
