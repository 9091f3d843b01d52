package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JackT-C/poker/internal/server/storage"
)

type stubProvider struct {
	secret string
	err    error
}

func (p *stubProvider) CreateChargeIntent(ctx context.Context, amountCents int) (string, error) {
	return p.secret, p.err
}

func newTestAPI(t *testing.T) (*gin.Engine, *storage.RedisStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := storage.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	a := New(Deps{Store: store, Payments: &stubProvider{secret: "sec_test"}})
	return NewRouter(a), store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeUser(t *testing.T, w *httptest.ResponseRecorder) UserResponse {
	t.Helper()
	var u UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	return u
}

func TestRegisterLoginAndUser(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "Alice", Password: "hunter22"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeUser(t, w)
	assert.Equal(t, "Alice", created.Username)
	assert.Equal(t, 1000, created.Chips)
	assert.NotEmpty(t, created.Token)

	w = doJSON(t, router, http.MethodPost, "/api/login", "", RegisterRequest{Username: "alice", Password: "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	logged := decodeUser(t, w)
	require.NotEmpty(t, logged.Token)

	w = doJSON(t, router, http.MethodGet, "/api/user", logged.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", decodeUser(t, w).Username)
}

func TestRegisterValidationStatuses(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "ab", Password: "hunter22"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "alice", Password: "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "alice", Password: "hunter22"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "ALICE", Password: "hunter22"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestAPI(t)
	doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "alice", Password: "hunter22"})

	w := doJSON(t, router, http.MethodPost, "/api/login", "", RegisterRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired(t *testing.T) {
	router, _ := newTestAPI(t)

	for _, probe := range []struct{ method, path string }{
		{http.MethodGet, "/api/user"},
		{http.MethodPost, "/api/save-chips"},
		{http.MethodPost, "/api/create-payment-intent"},
	} {
		w := doJSON(t, router, probe.method, probe.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, probe.path)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "alice", Password: "hunter22"})
	token := decodeUser(t, w).Token

	w = doJSON(t, router, http.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSaveChipsPersists(t *testing.T) {
	router, store := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "alice", Password: "hunter22"})
	token := decodeUser(t, w).Token

	w = doJSON(t, router, http.MethodPost, "/api/save-chips", token, SaveChipsRequest{Chips: 2500})
	require.Equal(t, http.StatusOK, w.Code)

	chips, err := store.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 2500, chips)

	w = doJSON(t, router, http.MethodPost, "/api/save-chips", token, SaveChipsRequest{Chips: -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePaymentIntent(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{Username: "alice", Password: "hunter22"})
	token := decodeUser(t, w).Token

	w = doJSON(t, router, http.MethodPost, "/api/create-payment-intent", token, PaymentIntentRequest{Amount: 999})
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaymentIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sec_test", resp.ClientSecret)

	w = doJSON(t, router, http.MethodPost, "/api/create-payment-intent", token, PaymentIntentRequest{Amount: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	router, _ := newTestAPI(t)
	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
