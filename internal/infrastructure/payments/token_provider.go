package payments

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/infrastructure/config"
	"concert_tickets/internal/usecase/interfaces"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const tokenPath = "/v1/oauth2/token"

// PayPalTokenProvider exchanges the client id and secret for a bearer token.
// Every call performs one request to the token endpoint.
type PayPalTokenProvider struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client
}

var _ interfaces.ITokenProvider = (*PayPalTokenProvider)(nil)

func NewPayPalTokenProvider(cfg config.PayPal, httpClient *http.Client) *PayPalTokenProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &PayPalTokenProvider{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     cfg.BaseURL + tokenPath,
		httpClient:   httpClient,
	}
}

func (p *PayPalTokenProvider) GetAccessToken(ctx context.Context) (entities.AccessToken, error) {
	if p.clientID == "" || p.clientSecret == "" {
		log.Printf("[payment][token] missing credentials")
		return entities.AccessToken{}, ErrMissingPayPalCredentials
	}

	cc := clientcredentials.Config{
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
		TokenURL:     p.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	tok, err := cc.Token(ctx)
	if err != nil {
		authErr := &UpstreamAuthError{Err: err}
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			authErr.StatusCode = retrieveErr.Response.StatusCode
		}
		log.Printf("[payment][token] token request failed status=%d err=%v", authErr.StatusCode, err)
		return entities.AccessToken{}, authErr
	}
	log.Printf("[payment][token] token issued expiry=%s", tok.Expiry.UTC().Format(time.RFC3339))

	return entities.AccessToken{Value: tok.AccessToken, Expiry: tok.Expiry}, nil
}
