package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/session"
)

type Handler struct {
	authenticator auth.Authenticator
	sessions      *session.Manager
	secureCookies bool
}

func New(authenticator auth.Authenticator, sessions *session.Manager, secureCookies bool) *Handler {
	return &Handler{
		authenticator: authenticator,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	principal, err := h.authenticator.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), *principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to start session"})
		return
	}

	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": principal})
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(auth.SessionCookie); err == nil {
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *Handler) status(c *gin.Context) {
	token, err := c.Cookie(auth.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	principal, err := h.sessions.Lookup(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "user": principal})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", h.secureCookies, true)
}
