package payments

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"concert_tickets/internal/infrastructure/config"
)

// fakePayPal is a minimal stand-in for the PayPal REST API.
type fakePayPal struct {
	srv *httptest.Server

	tokenStatus int
	tokenBody   string

	orderStatus int
	orderBody   string

	tokenCalls atomic.Int32
	orderCalls atomic.Int32

	mu      sync.Mutex
	order   recordedRequest
	basicOK bool
	grant   string
}

type recordedRequest struct {
	Path       string
	Auth       string
	Body       []byte
	MockHeader string
}

func newFakePayPal(t *testing.T, opts ...func(*fakePayPal)) *fakePayPal {
	t.Helper()
	f := &fakePayPal{
		tokenStatus: http.StatusOK,
		tokenBody:   `{"scope":"https://uri.paypal.com/services/payments","access_token":"A21AAtest","token_type":"Bearer","app_id":"APP-80W284485P519543T","expires_in":32400,"nonce":"n"}`,
		orderStatus: http.StatusCreated,
		orderBody:   `{"id":"5O190127TN364715T","status":"CREATED"}`,
	}
	for _, opt := range opts {
		opt(f)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		_ = r.ParseForm()
		f.mu.Lock()
		f.basicOK = ok && user == "client-id" && pass == "client-secret"
		f.grant = r.PostForm.Get("grant_type")
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.tokenStatus)
		_, _ = io.WriteString(w, f.tokenBody)
	})
	mux.HandleFunc("/v2/checkout/orders", f.handleOrder)
	mux.HandleFunc("/v2/checkout/orders/", f.handleOrder)

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakePayPal) handleOrder(w http.ResponseWriter, r *http.Request) {
	f.orderCalls.Add(1)
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.order = recordedRequest{
		Path:       r.URL.Path,
		Auth:       r.Header.Get("Authorization"),
		Body:       body,
		MockHeader: r.Header.Get("PayPal-Mock-Response"),
	}
	f.mu.Unlock()

	if json.Valid([]byte(f.orderBody)) {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/html")
	}
	w.WriteHeader(f.orderStatus)
	_, _ = io.WriteString(w, f.orderBody)
}

func (f *fakePayPal) config() config.PayPal {
	return config.PayPal{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		BaseURL:      f.srv.URL,
	}
}

func (f *fakePayPal) lastOrder() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.order
}

func (f *fakePayPal) lastToken() (basicOK bool, grant string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.basicOK, f.grant
}
