package exchange

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientRate(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"table":"A","currency":"dolar amerykański","code":"USD","rates":[{"no":"091/A/NBP/2021","effectiveDate":"2021-05-13","mid":3.7861}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	rate, err := client.Rate(context.Background(), "USD", time.Date(2021, 5, 13, 18, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}
	if rate != 3.7861 {
		t.Errorf("Rate = %v, want 3.7861", rate)
	}

	wantPath := "/api/exchangerates/rates/a/usd/2021-05-13/2021-05-13"
	if gotPath != wantPath {
		t.Errorf("request path = %q, want %q", gotPath, wantPath)
	}
	if gotQuery != "format=json" {
		t.Errorf("request query = %q, want %q", gotQuery, "format=json")
	}
}

func TestClientRateNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 NotFound", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.Rate(context.Background(), "USD", time.Now()); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable on 404, got %v", err)
	}
}

func TestClientRateMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.Rate(context.Background(), "USD", time.Now()); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable on malformed body, got %v", err)
	}
}

func TestClientRateEmptyRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.Rate(context.Background(), "USD", time.Now()); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable on empty rates, got %v", err)
	}
}

func TestClientRateUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	client := NewClient(server.URL, time.Second)
	if _, err := client.Rate(context.Background(), "USD", time.Now()); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable on refused connection, got %v", err)
	}
}
