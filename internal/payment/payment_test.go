package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChargeIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req intentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 500, req.Amount)
		assert.Equal(t, "usd", req.Currency)

		json.NewEncoder(w).Encode(intentResponse{ClientSecret: "sec_123"})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	secret, err := p.CreateChargeIntent(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, "sec_123", secret)
}

func TestCreateChargeIntentErrors(t *testing.T) {
	p := NewHTTPProvider("")
	_, err := p.CreateChargeIntent(context.Background(), 500)
	assert.ErrorIs(t, err, ErrDisabled)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	p = NewHTTPProvider(srv.URL)
	_, err = p.CreateChargeIntent(context.Background(), 500)
	assert.Error(t, err)

	_, err = p.CreateChargeIntent(context.Background(), -1)
	assert.Error(t, err)
}
