package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arkananta/rantai/internal/pkg/apperrors"
)

// MessageResponse represents a plain message body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageOK sends a 200 response with a message body
func MessageOK(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// ErrorResponseHandler sends an error response with the given status
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{Message: errorMessage})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps a domain error to its HTTP status and message
func DomainErrorResponse(c echo.Context, err error) error {
	return ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
}
