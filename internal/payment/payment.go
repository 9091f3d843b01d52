// Package payment creates charge intents against an external payment
// provider so players can buy chips.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const requestTimeout = 3 * time.Second

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("payments are not configured")

// Provider creates charge intents. Amounts are in cents.
type Provider interface {
	CreateChargeIntent(ctx context.Context, amountCents int) (clientSecret string, err error)
}

// HTTPProvider calls a payment backend over HTTP.
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTPProvider creates a provider for the given intent endpoint. An
// empty URL yields a disabled provider that rejects every charge.
func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
	}
}

type intentRequest struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// CreateChargeIntent asks the backend for a new charge intent and returns
// the client secret the buyer completes the charge with.
func (p *HTTPProvider) CreateChargeIntent(ctx context.Context, amountCents int) (string, error) {
	if p.url == "" {
		return "", ErrDisabled
	}
	if amountCents <= 0 {
		return "", fmt.Errorf("invalid charge amount %d", amountCents)
	}

	body, err := json.Marshal(intentRequest{Amount: amountCents, Currency: "usd"})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment provider returned %s", resp.Status)
	}

	var out intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding intent response: %w", err)
	}
	if out.ClientSecret == "" {
		return "", errors.New("payment provider returned no client secret")
	}
	return out.ClientSecret, nil
}
