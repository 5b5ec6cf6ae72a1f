package auth

import (
	"context"

	"github.com/arkananta/rantai/internal/pkg/models"
)

// AuthUC defines the authentication use case operations
type AuthUC interface {
	// GenerateOTP issues a fresh code for the mobile number and dispatches it
	GenerateOTP(ctx context.Context, mobile string) error
	// VerifyOTP consumes a code and resolves the caller's identity
	VerifyOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error)
}
