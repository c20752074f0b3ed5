// internal/payments/client_test.go
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tvidela/clubcancha/internal/config"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{1500, "15.00"},
		{123456, "1234.56"},
		{-250, "-2.50"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.cents); got != tt.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"0.00", 0, false},
		{"15.00", 1500, false},
		{"1234.56", 123456, false},
		{"7", 700, false},
		{"7.5", 750, false},
		{" 9.99 ", 999, false},
		{"-2.50", -250, false},
		{"1.234", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseAmount(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAmount(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAmountRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 1050, 999999} {
		got, err := parseAmount(formatAmount(cents))
		if err != nil || got != cents {
			t.Errorf("round trip of %d: got %d, %v", cents, got, err)
		}
	}
}

func newTestClient(url string) *Client {
	return NewClient(config.PaymentsConfig{BaseURL: url, AccessToken: "test-token", Timeout: 5})
}

func TestCreatePreferenceSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "pref-1", "init_point": "https://pay.example/p/1"}`))
	}))
	defer server.Close()

	pref, err := newTestClient(server.URL).CreatePreference(context.Background(), PreferenceRequest{
		Title: "Court", AmountCents: 1500, ExternalReference: "abc",
	})
	if err != nil {
		t.Fatalf("CreatePreference: %v", err)
	}
	if pref.ID != "pref-1" {
		t.Errorf("preference id: got %q", pref.ID)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("authorization header: got %q", gotAuth)
	}
}

func TestCreatePreferenceSendsCheckoutWindow(t *testing.T) {
	var got preferencePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Write([]byte(`{"id": "pref-1", "init_point": "https://pay.example/p/1"}`))
	}))
	defer server.Close()

	from := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := newTestClient(server.URL).CreatePreference(context.Background(), PreferenceRequest{
		Title:       "Court",
		AmountCents: 1500,
		ExpiresFrom: from,
		ExpiresTo:   from.Add(5 * time.Minute),
	})
	if err != nil {
		t.Fatalf("CreatePreference: %v", err)
	}
	if got.ExpiresFrom != "2025-03-10T09:00:00Z" {
		t.Errorf("expires_from on the wire: got %q", got.ExpiresFrom)
	}
	if got.ExpiresTo != "2025-03-10T09:05:00Z" {
		t.Errorf("expires_to on the wire: got %q", got.ExpiresTo)
	}
}

func TestCreatePreferenceRejectsEmptyID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"init_point": "https://pay.example/p/1"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreatePreference(context.Background(), PreferenceRequest{
		Title: "Court", AmountCents: 1500,
	})
	if err == nil {
		t.Fatal("empty preference id accepted")
	}
}

func TestGatewayErrorsWrapSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status": "error", "message": "down for maintenance"}`))
	}))
	defer server.Close()
	client := newTestClient(server.URL)

	if _, err := client.CreatePreference(context.Background(), PreferenceRequest{Title: "x"}); !errors.Is(err, ErrGateway) {
		t.Errorf("CreatePreference error %v does not wrap ErrGateway", err)
	}
	if _, err := client.GetPayment(context.Background(), "p-1"); !errors.Is(err, ErrGateway) {
		t.Errorf("GetPayment error %v does not wrap ErrGateway", err)
	}

	// Unreachable host fails the same way.
	dead := newTestClient("http://127.0.0.1:1")
	if _, err := dead.GetPayment(context.Background(), "p-1"); !errors.Is(err, ErrGateway) {
		t.Errorf("connection error %v does not wrap ErrGateway", err)
	}
}

func TestGetPaymentParsesAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payments/p-42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id": "p-42", "status": "approved", "amount": "15.00", "external_reference": "res-1", "date_approved": "2025-03-10T09:03:21Z"}`))
	}))
	defer server.Close()

	p, err := newTestClient(server.URL).GetPayment(context.Background(), "p-42")
	if err != nil {
		t.Fatalf("GetPayment: %v", err)
	}
	if p.AmountCents != 1500 || p.Status != StatusApproved || p.ExternalReference != "res-1" {
		t.Errorf("unexpected payment: %+v", p)
	}
	if want := time.Date(2025, 3, 10, 9, 3, 21, 0, time.UTC); !p.DateApproved.Equal(want) {
		t.Errorf("date_approved: got %v, want %v", p.DateApproved, want)
	}
}
