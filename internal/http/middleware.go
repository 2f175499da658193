package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// accessTokenCookie is the cookie carrying the short-lived access token.
// Its name is a stable contract with the frontend.
const accessTokenCookie = "accessToken"

// refreshTokenCookie carries the long-lived refresh token.
const refreshTokenCookie = "refreshToken"

// authRequired resolves the caller's identity from the access token
// cookie. It trusts the signature and expiry alone; no database lookup
// happens here, and logout does not revoke already-issued access tokens.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(accessTokenCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		userID, err := h.issuer.VerifyAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the user id resolved by authRequired.
func currentUserID(c *gin.Context) int64 {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(int64)
	return userID
}
