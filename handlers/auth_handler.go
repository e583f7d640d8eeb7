package handlers

import (
	"errors"
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Token(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, http.StatusBadRequest)
		return
	}

	token, expires, err := h.authService.Login(&req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.logger.Warn("admin login rejected", zap.String("username", req.Username), zap.String("ip", c.ClientIP()))
		AbortWithError(c, http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.Error("issue admin token", zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"expires_at": expires,
	})
}
