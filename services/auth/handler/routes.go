package handler

import (
	"github.com/labstack/echo/v4"

	authhttp "github.com/arkananta/rantai/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *authhttp.AuthHandler
}

// NewHandler creates and initializes the auth handlers
func NewHandler(authHandler *authhttp.AuthHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
	}
}

// RegisterRoutes registers the auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/send-otp", h.authHandler.SendOTP)
	e.POST("/verify-otp", h.authHandler.VerifyOTP)
}
