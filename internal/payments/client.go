// internal/payments/client.go

// Package payments integrates the external payment gateway: an
// injected HTTP client for preference creation and payment lookup,
// and the idempotent confirmation flow driven by gateway callbacks.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tvidela/clubcancha/internal/config"
)

// ErrGateway marks failures talking to the payment gateway. The API
// layer maps it to a 502 without leaking gateway internals.
var ErrGateway = errors.New("payment gateway error")

// Gateway is the narrow interface the reservation and dues flows
// depend on. The real client talks HTTP; tests substitute a stub.
type Gateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (Preference, error)
	GetPayment(ctx context.Context, paymentID string) (Payment, error)
}

type PreferenceRequest struct {
	Title             string
	AmountCents       int64
	ExternalReference string
	NotificationURL   string

	// Checkout window. The gateway stops accepting payment at
	// ExpiresTo, matching the reservation's own expiration deadline.
	ExpiresFrom time.Time
	ExpiresTo   time.Time
}

type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type Payment struct {
	ID                string
	Status            string
	StatusDetail      string
	AmountCents       int64
	ExternalReference string
	DateApproved      time.Time // zero when the gateway reports none
}

const StatusApproved = "approved"

// Client is the HTTP implementation of Gateway. Amounts cross the wire
// as two-decimal strings; internally everything stays integer cents.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.PaymentsConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		http: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

type preferencePayload struct {
	Title             string `json:"title"`
	Amount            string `json:"amount"`
	ExternalReference string `json:"external_reference"`
	NotificationURL   string `json:"notification_url,omitempty"`
	ExpiresFrom       string `json:"expires_from,omitempty"`
	ExpiresTo         string `json:"expires_to,omitempty"`
}

type paymentPayload struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	Amount            string `json:"amount"`
	ExternalReference string `json:"external_reference"`
	DateApproved      string `json:"date_approved"`
}

type errorPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (Preference, error) {
	payload := preferencePayload{
		Title:             req.Title,
		Amount:            formatAmount(req.AmountCents),
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
	}
	if !req.ExpiresTo.IsZero() {
		payload.ExpiresFrom = req.ExpiresFrom.Format(time.RFC3339)
		payload.ExpiresTo = req.ExpiresTo.Format(time.RFC3339)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Preference{}, fmt.Errorf("error encoding preference request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/preferences", bytes.NewReader(body))
	if err != nil {
		return Preference{}, fmt.Errorf("error building preference request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Preference{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Preference{}, gatewayError(resp)
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return Preference{}, fmt.Errorf("error decoding preference response: %w", err)
	}
	if pref.ID == "" {
		return Preference{}, fmt.Errorf("payment gateway returned empty preference id")
	}
	return pref, nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (Payment, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+paymentID, nil)
	if err != nil {
		return Payment{}, fmt.Errorf("error building payment request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Payment{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Payment{}, gatewayError(resp)
	}

	var payload paymentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Payment{}, fmt.Errorf("error decoding payment response: %w", err)
	}
	cents, err := parseAmount(payload.Amount)
	if err != nil {
		return Payment{}, fmt.Errorf("error parsing payment amount %q: %w", payload.Amount, err)
	}
	var approved time.Time
	if payload.DateApproved != "" {
		approved, err = time.Parse(time.RFC3339, payload.DateApproved)
		if err != nil {
			return Payment{}, fmt.Errorf("error parsing approval date %q: %w", payload.DateApproved, err)
		}
	}
	return Payment{
		ID:                payload.ID,
		Status:            payload.Status,
		StatusDetail:      payload.StatusDetail,
		AmountCents:       cents,
		ExternalReference: payload.ExternalReference,
		DateApproved:      approved,
	}, nil
}

func gatewayError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var e errorPayload
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return fmt.Errorf("%w (%d %s): %s", ErrGateway, resp.StatusCode, e.Status, e.Message)
	}
	return fmt.Errorf("%w: status %d", ErrGateway, resp.StatusCode)
}

// formatAmount renders cents as a two-decimal string for the wire.
func formatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// parseAmount converts a two-decimal wire amount back to cents
// without going through a binary float.
func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	switch len(frac) {
	case 0:
		frac = "00"
	case 1:
		frac = frac + "0"
	case 2:
	default:
		return 0, fmt.Errorf("more than two decimal places")
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, err
	}
	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return cents, nil
}
