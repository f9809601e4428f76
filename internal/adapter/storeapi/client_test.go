package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	domainErrors "github.com/example/shopfront/internal/domain/errors"
	"github.com/example/shopfront/internal/domain/model"
)

type memKeyStore struct {
	value string
}

func (m *memKeyStore) Get() string      { return m.value }
func (m *memKeyStore) Set(token string) { m.value = strings.TrimSpace(token) }
func (m *memKeyStore) Clear()           { m.value = "" }

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, baseURL, key string) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClient(baseURL, "api_key", &memKeyStore{value: key}, 5*time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	keys := &memKeyStore{}
	if _, err := NewHTTPClient("://bad-url", "api_key", keys, time.Second, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "api_key", keys, time.Second, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestMissingCredentialFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "")
	if _, err := client.ListGoods(context.Background(), 1, 8, ""); !errors.Is(err, domainErrors.ErrAPIKeyMissing) {
		t.Fatalf("expected ErrAPIKeyMissing, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatal("no request must be issued without a credential")
	}
}

func TestListGoodsQueryParameters(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "secret")

	if _, err := client.ListGoods(context.Background(), 2, 8, "lamp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"api_key=secret", "page=2", "per_page=8", "query=lamp"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in query %q", want, got)
		}
	}

	if _, err := client.ListGoods(context.Background(), 1, 8, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "query=") {
		t.Fatalf("empty query must be omitted, got %q", got)
	}
}

func TestCreateOrderSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		var payload model.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		if payload.DeliveryDate != "01.05.2024" {
			t.Errorf("unexpected delivery date %q", payload.DeliveryDate)
		}
		w.Write([]byte(`{"id":42}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "secret")
	created, err := client.CreateOrder(context.Background(), model.CreateOrderRequest{
		FullName:     "Ivanov Ivan",
		DeliveryDate: "01.05.2024",
		GoodIDs:      []int64{1, 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("expected created order id 42, got %d", created.ID)
	}
}

func TestGetRequestsCarryNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "" {
			t.Errorf("unexpected content type on GET")
		}
		w.Write([]byte(`{"id":1,"name":"Lamp"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "secret")
	if _, err := client.GetGood(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServerErrorsBecomeRequestFailed(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "message field", status: http.StatusForbidden, body: `{"message":"bad key"}`, message: "bad key"},
		{name: "error field", status: http.StatusBadRequest, body: `{"error":"missing field"}`, message: "missing field"},
		{name: "plain text body", status: http.StatusInternalServerError, body: "boom", message: "request failed (500)"},
		{name: "empty body", status: http.StatusBadGateway, body: "", message: "request failed (502)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL, "secret")
			_, err := client.ListOrders(context.Background())

			var failed *RequestFailedError
			if !errors.As(err, &failed) {
				t.Fatalf("expected RequestFailedError, got %v", err)
			}
			if failed.Status != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, failed.Status)
			}
			if failed.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, failed.Message)
			}
		})
	}
}

func TestMalformedSuccessBodyIsTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "secret")
	orders, err := client.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("malformed body must not fail the call, got %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders from malformed body, got %v", orders)
	}
}

func TestCancellationIsDistinctFromFailure(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := newTestClient(t, srv.URL, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.Autocomplete(ctx, "lam")
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		var failed *RequestFailedError
		if errors.As(err, &failed) {
			t.Fatal("cancellation must not look like a server failure")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled request did not return")
	}
}

func TestDeleteOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "secret")
	if err := client.DeleteOrder(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
