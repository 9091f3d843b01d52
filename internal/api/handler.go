// Package api exposes the account and payment REST endpoints next to the
// game's WebSocket gateway.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JackT-C/poker/internal/payment"
	"github.com/JackT-C/poker/internal/server/storage"
)

// Deps are the collaborators the REST layer needs.
type Deps struct {
	Store    *storage.RedisStore
	Payments payment.Provider
}

// API holds the REST handlers and their session state.
type API struct {
	store    *storage.RedisStore
	payments payment.Provider
	sessions *sessionStore
}

// New creates the REST layer.
func New(deps Deps) *API {
	return &API{
		store:    deps.Store,
		payments: deps.Payments,
		sessions: newSessionStore(),
	}
}

// bearerToken pulls the session token from the Authorization header.
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return after
	}
	return ""
}

// requireUser is the auth middleware: it resolves the bearer token and
// stores the username in the request context.
func (a *API) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := a.sessions.lookup(bearerToken(c))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.Set("username", username)
		c.Next()
	}
}

func (a *API) handleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	acct, err := a.store.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUsernameTooShort), errors.Is(err, storage.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, storage.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		Username: acct.Username,
		Chips:    acct.Chips,
		Token:    a.sessions.create(acct.Username),
	})
}

func (a *API) handleLogin(c *gin.Context) {
	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	acct, err := a.store.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Username: acct.Username,
		Chips:    acct.Chips,
		Token:    a.sessions.create(acct.Username),
	})
}

func (a *API) handleLogout(c *gin.Context) {
	a.sessions.revoke(bearerToken(c))
	c.Status(http.StatusNoContent)
}

func (a *API) handleGetUser(c *gin.Context) {
	username := c.GetString("username")
	acct, err := a.store.GetAccount(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, UserResponse{Username: acct.Username, Chips: acct.Chips})
}

func (a *API) handleSaveChips(c *gin.Context) {
	var req SaveChipsRequest
	if err := c.BindJSON(&req); err != nil || req.Chips < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chips must be a non-negative number"})
		return
	}

	username := c.GetString("username")
	if err := a.store.SetBalance(c.Request.Context(), username, req.Chips); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "saving chips failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chips": req.Chips})
}

func (a *API) handleCreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.BindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive number of cents"})
		return
	}

	secret, err := a.payments.CreateChargeIntent(c.Request.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, payment.ErrDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments are not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider error"})
		return
	}
	c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}
