package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/arkananta/rantai/internal/pkg/logger"
	"github.com/arkananta/rantai/internal/pkg/models"
	"github.com/arkananta/rantai/internal/utils"
	"github.com/arkananta/rantai/services/auth"
)

// AuthHandler handles HTTP requests for OTP authentication
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendOTP handles OTP issuance requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var request models.SendOTPRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.Mobile == "" {
		return utils.BadRequestResponse(c, "Mobile number required")
	}

	if err := h.authUC.GenerateOTP(c.Request().Context(), request.Mobile); err != nil {
		logger.Warn("Failed to send OTP",
			logger.String("mobile", request.Mobile),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.MessageOK(c, "OTP sent")
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var request models.VerifyOTPRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.Mobile == "" || request.OTP == "" {
		return utils.BadRequestResponse(c, "Mobile number and OTP are required")
	}

	response, err := h.authUC.VerifyOTP(c.Request().Context(), request.Mobile, request.OTP)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(nethttp.StatusOK, response)
}
