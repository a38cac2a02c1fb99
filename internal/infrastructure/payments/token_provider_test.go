package payments

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestPayPalTokenProvider_GetAccessToken(t *testing.T) {
	t.Run("missing credentials never hit the network", func(t *testing.T) {
		fake := newFakePayPal(t)
		for _, tc := range []struct{ id, secret string }{{"", "s"}, {"id", ""}, {"", ""}} {
			cfg := fake.config()
			cfg.ClientID, cfg.ClientSecret = tc.id, tc.secret
			p := NewPayPalTokenProvider(cfg, fake.srv.Client())

			_, err := p.GetAccessToken(context.Background())
			if !errors.Is(err, ErrMissingPayPalCredentials) {
				t.Fatalf("expected ErrMissingPayPalCredentials, got %v", err)
			}
		}
		if n := fake.tokenCalls.Load(); n != 0 {
			t.Fatalf("expected no token calls, got %d", n)
		}
	})

	t.Run("success", func(t *testing.T) {
		fake := newFakePayPal(t)
		p := NewPayPalTokenProvider(fake.config(), fake.srv.Client())

		tok, err := p.GetAccessToken(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Value != "A21AAtest" {
			t.Fatalf("unexpected token: %q", tok.Value)
		}
		if !tok.Expiry.After(time.Now().Add(8 * time.Hour)) {
			t.Fatalf("expected expiry from expires_in, got %s", tok.Expiry)
		}
		basicOK, grant := fake.lastToken()
		if !basicOK {
			t.Fatalf("expected basic auth with client credentials")
		}
		if grant != "client_credentials" {
			t.Fatalf("unexpected grant_type: %q", grant)
		}
	})

	t.Run("fresh token per call", func(t *testing.T) {
		fake := newFakePayPal(t)
		p := NewPayPalTokenProvider(fake.config(), fake.srv.Client())

		for i := 0; i < 3; i++ {
			if _, err := p.GetAccessToken(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if n := fake.tokenCalls.Load(); n != 3 {
			t.Fatalf("expected 3 token calls, got %d", n)
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		fake := newFakePayPal(t, func(f *fakePayPal) {
			f.tokenStatus = http.StatusUnauthorized
			f.tokenBody = `{"error":"invalid_client","error_description":"Client Authentication failed"}`
		})
		p := NewPayPalTokenProvider(fake.config(), fake.srv.Client())

		_, err := p.GetAccessToken(context.Background())
		var authErr *UpstreamAuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected UpstreamAuthError, got %v", err)
		}
		if authErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", authErr.StatusCode)
		}
	})

	t.Run("body without access token", func(t *testing.T) {
		fake := newFakePayPal(t, func(f *fakePayPal) {
			f.tokenBody = `{"token_type":"Bearer"}`
		})
		p := NewPayPalTokenProvider(fake.config(), fake.srv.Client())

		_, err := p.GetAccessToken(context.Background())
		var authErr *UpstreamAuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected UpstreamAuthError, got %v", err)
		}
	})

	t.Run("non json body", func(t *testing.T) {
		fake := newFakePayPal(t, func(f *fakePayPal) {
			f.tokenBody = `<html>maintenance</html>`
		})
		p := NewPayPalTokenProvider(fake.config(), fake.srv.Client())

		_, err := p.GetAccessToken(context.Background())
		var authErr *UpstreamAuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected UpstreamAuthError, got %v", err)
		}
	})
}
