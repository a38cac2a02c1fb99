package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/infrastructure/config"
	"concert_tickets/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	ordersPath = "/v2/checkout/orders"

	headerMockResponse = "PayPal-Mock-Response"
)

type tokenInvalidator interface {
	Invalidate(ctx context.Context)
}

// PayPalGateway talks to the PayPal Orders v2 REST API.
type PayPalGateway struct {
	baseURL      string
	tokens       interfaces.ITokenProvider
	httpClient   *http.Client
	mockResponse string
	mockMode     bool
}

var _ interfaces.IPaymentGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(cfg config.PayPal, tokens interfaces.ITokenProvider, httpClient *http.Client) *PayPalGateway {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PayPalGateway{mockMode: true}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	log.Printf("[payment][gateway] PayPal client initialized base_url=%s", cfg.BaseURL)

	return &PayPalGateway{
		baseURL:      cfg.BaseURL,
		tokens:       tokens,
		httpClient:   httpClient,
		mockResponse: cfg.MockResponse,
	}
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, order entities.OrderRequest) (entities.ProviderResponse, error) {
	if g != nil && g.mockMode {
		id := mockOrderID()
		log.Printf("[payment][gateway] mock create success order_id=%s", id)
		return mockResponse(http.StatusCreated, map[string]any{
			"id":             id,
			"status":         "CREATED",
			"intent":         order.Intent,
			"purchase_units": order.PurchaseUnits,
		})
	}
	if g == nil || g.tokens == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderResponse{}, ErrPayPalGatewayNotConfigured
	}

	body, err := json.Marshal(order)
	if err != nil {
		log.Printf("[payment][gateway] order marshal failed err=%v", err)
		return entities.ProviderResponse{}, err
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(body))

	resp, err := g.post(ctx, ordersPath, body)
	if err != nil {
		log.Printf("[payment][gateway] create failed err=%v", err)
		return entities.ProviderResponse{}, err
	}
	log.Printf("[payment][gateway] create done status=%d", resp.StatusCode)
	return resp, nil
}

func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (entities.ProviderResponse, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock capture success order_id=%s", orderID)
		return mockResponse(http.StatusCreated, map[string]any{
			"id":     orderID,
			"status": "COMPLETED",
		})
	}
	if g == nil || g.tokens == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderResponse{}, ErrPayPalGatewayNotConfigured
	}
	log.Printf("[payment][gateway] capture start order_id=%s", orderID)

	resp, err := g.post(ctx, ordersPath+"/"+url.PathEscape(orderID)+"/capture", nil)
	if err != nil {
		log.Printf("[payment][gateway] capture failed order_id=%s err=%v", orderID, err)
		return entities.ProviderResponse{}, err
	}
	log.Printf("[payment][gateway] capture done order_id=%s status=%d", orderID, resp.StatusCode)
	return resp, nil
}

func (g *PayPalGateway) post(ctx context.Context, path string, body []byte) (entities.ProviderResponse, error) {
	tok, err := g.tokens.GetAccessToken(ctx)
	if err != nil {
		return entities.ProviderResponse{}, err
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, reader)
	if err != nil {
		return entities.ProviderResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok.Value)
	if g.mockResponse != "" {
		req.Header.Set(headerMockResponse, g.mockResponse)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entities.ProviderResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if inv, ok := g.tokens.(tokenInvalidator); ok {
			inv.Invalidate(ctx)
		}
	}
	return NormalizeResponse(resp)
}

// NormalizeResponse reads the whole provider body and returns it with the
// status code when it is JSON. Any other body yields an UpstreamResponseError
// carrying the raw text.
func NormalizeResponse(resp *http.Response) (entities.ProviderResponse, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.ProviderResponse{}, &UpstreamResponseError{StatusCode: resp.StatusCode, Err: err}
	}
	if !json.Valid(raw) {
		log.Printf("[payment][gateway] non-json response status=%d body_len=%d", resp.StatusCode, len(raw))
		return entities.ProviderResponse{}, &UpstreamResponseError{StatusCode: resp.StatusCode, Text: string(raw)}
	}
	return entities.ProviderResponse{StatusCode: resp.StatusCode, Body: json.RawMessage(raw)}, nil
}

func mockResponse(status int, body map[string]any) (entities.ProviderResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return entities.ProviderResponse{}, err
	}
	return entities.ProviderResponse{StatusCode: status, Body: b}, nil
}

// mockOrderID mimics the 17 character upper-case ids PayPal hands out.
func mockOrderID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:17]
}
