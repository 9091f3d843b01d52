package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the account and payment routes.
// The WebSocket gateway mounts its own handler on the returned engine.
func NewRouter(a *API) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	grp := r.Group("/api")
	{
		grp.POST("/register", a.handleRegister)
		grp.POST("/login", a.handleLogin)
		grp.POST("/logout", a.handleLogout)

		authed := grp.Group("", a.requireUser())
		authed.GET("/user", a.handleGetUser)
		authed.POST("/save-chips", a.handleSaveChips)
		authed.POST("/create-payment-intent", a.handleCreatePaymentIntent)
	}

	return r
}
