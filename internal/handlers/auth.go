package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadebrew/site-manager/internal/auth"
	"github.com/jadebrew/site-manager/internal/logger"
)

type AuthHandler struct {
	authenticator *auth.Authenticator
	logger        logger.Logger
}

func NewAuthHandler(authenticator *auth.Authenticator, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		logger:        log,
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the shared admin password for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, err := h.authenticator.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadPassword) {
			h.logger.Warn("Failed admin login attempt",
				logger.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
