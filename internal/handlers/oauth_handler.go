package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectzeus/checkin-backend/internal/services"
)

const stateCookie = "oauth_state"

// OAuthHandler drives the Google authorization-code flow
type OAuthHandler struct {
	oauthService *services.OAuthService
	logger       *zap.Logger
}

// NewOAuthHandler creates a new OAuthHandler
func NewOAuthHandler(oauthService *services.OAuthService, logger *zap.Logger) *OAuthHandler {
	return &OAuthHandler{
		oauthService: oauthService,
		logger:       logger,
	}
}

// Authorize handles GET /authorize, redirecting to the consent screen
func (h *OAuthHandler) Authorize(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.oauthService.AuthCodeURL(state))
}

// Callback handles GET /oauth2callback
func (h *OAuthHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state mismatch"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	if err := h.oauthService.Exchange(c.Request.Context(), code); err != nil {
		h.logger.Error("token exchange failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token exchange failed"})
		return
	}

	c.String(http.StatusOK, "Authorization complete. You can close this tab.")
}
