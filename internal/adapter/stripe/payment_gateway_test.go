package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sm8ta/bikes4u_marketplace/internal/testutil"

	stripego "github.com/stripe/stripe-go/v76"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *PaymentGateway {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	backend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		URL:               stripego.String(ts.URL),
		MaxNetworkRetries: stripego.Int64(0),
		LeveledLogger:     &stripego.LeveledLogger{Level: stripego.LevelNull},
	})
	return newPaymentGateway("sk_test_123", &stripego.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	}, &testutil.Logger{})
}

func TestCreatePaymentIntent(t *testing.T) {
	var (
		path, auth, amount, currency, method string
	)
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		amount = r.PostForm.Get("amount")
		currency = r.PostForm.Get("currency")
		method = r.PostForm.Get("payment_method_types[0]")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":50000,"currency":"usd","client_secret":"pi_1_secret_abc"}`))
	})

	secret, err := gateway.CreatePaymentIntent(context.Background(), 50000, "usd")
	if err != nil {
		t.Fatalf("CreatePaymentIntent() error = %v", err)
	}
	if secret != "pi_1_secret_abc" {
		t.Errorf("secret = %q", secret)
	}

	if path != "/v1/payment_intents" {
		t.Errorf("path = %q", path)
	}
	if auth != "Bearer sk_test_123" {
		t.Errorf("Authorization = %q", auth)
	}
	if amount != "50000" || currency != "usd" || method != "card" {
		t.Errorf("form = amount %q currency %q method %q", amount, currency, method)
	}
}

func TestCreatePaymentIntentDeclined(t *testing.T) {
	calls := 0
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	})

	secret, err := gateway.CreatePaymentIntent(context.Background(), 100, "usd")
	if err == nil {
		t.Fatal("expected an error")
	}
	if secret != "" {
		t.Errorf("secret = %q, want empty", secret)
	}
	if calls != 1 {
		t.Errorf("server called %d times, want exactly once", calls)
	}
}
