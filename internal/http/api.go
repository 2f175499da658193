package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shopstock/internal/auth"
	"shopstock/internal/repository"
	"shopstock/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth          service.AuthService
	items         service.ItemService
	issuer        *auth.Issuer
	secureCookies bool
	allowOrigin   string
	logger        *logrus.Logger
}

func NewHandler(authSvc service.AuthService, items service.ItemService, issuer *auth.Issuer, secureCookies bool, allowOrigin string, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:          authSvc,
		items:         items,
		issuer:        issuer,
		secureCookies: secureCookies,
		allowOrigin:   allowOrigin,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.corsMiddleware())
	router.Use(h.requestLogger())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
			authGroup.POST("/logout", h.authRequired(), h.logout)
			authGroup.GET("/me", h.authRequired(), h.currentUser)
		}

		inventory := api.Group("/inventory", h.authRequired())
		{
			inventory.GET("", h.listItems)
			inventory.GET("/search", h.searchItems)
			inventory.GET("/low-stock", h.lowStockItems)
			inventory.GET("/stats", h.inventoryStats)
			inventory.GET("/:id", h.getItem)
			inventory.POST("", h.createItem)
			inventory.PUT("/:id", h.updateItem)
			inventory.DELETE("/:id", h.deleteItem)
		}
	}
}

// corsMiddleware allows the configured frontend origin; credentials
// (cookies) require an explicit origin rather than a wildcard.
func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", h.allowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).Round(time.Millisecond).String(),
		}).Info("request")
	}
}

// respondError maps domain errors onto HTTP statuses. Anything
// unexpected is logged and reported as a generic server error.
func (h *Handler) respondError(c *gin.Context, err error) {
	var validation service.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, service.ErrUserExists), errors.Is(err, service.ErrItemExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
