package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/macro-calc/calc"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	cfg calc.Config // Calculation constants (overridable for tests)
}

const requestIDHeader = "X-Request-ID"

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requestID echoes the caller's X-Request-ID or assigns a new one, and stores
// it on the context as "request_id" for log lines.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.Use(requestID())
	router.GET("/healthz", h.healthz)

	api := router.Group("/api")
	api.GET("/policies", h.listPolicies)
	api.POST("/macros", h.computeMacros)
	api.POST("/tdee", h.estimateTDEE)
}
