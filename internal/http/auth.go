package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopstock/internal/domain"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	ShopName string `json:"shopName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ShopName)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user.Public(),
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"user":    user.Public(),
	})
}

func (h *Handler) logout(c *gin.Context) {
	userID := currentUserID(c)

	if err := h.auth.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		h.respondError(c, err)
		return
	}

	h.clearCookie(c, accessTokenCookie)
	h.clearCookie(c, refreshTokenCookie)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) currentUser(c *gin.Context) {
	user, err := h.auth.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// startSession issues both tokens, persists the refresh token and sets
// the session cookies. The user insert and the refresh token write are
// two separate writes; a failure in between leaves a user without a
// refresh token, which the next login repairs.
func (h *Handler) startSession(c *gin.Context, user *domain.User) error {
	access, err := h.issuer.AccessToken(user.ID)
	if err != nil {
		return err
	}
	refresh, err := h.issuer.RefreshToken(user.ID)
	if err != nil {
		return err
	}

	if err := h.auth.StoreRefreshToken(c.Request.Context(), user.ID, refresh); err != nil {
		return err
	}

	h.setCookie(c, accessTokenCookie, access, int(h.issuer.AccessTTL().Seconds()))
	h.setCookie(c, refreshTokenCookie, refresh, int(h.issuer.RefreshTTL().Seconds()))
	return nil
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, maxAge, "/", "", h.secureCookies, true)
}

func (h *Handler) clearCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, "", -1, "/", "", h.secureCookies, true)
}
