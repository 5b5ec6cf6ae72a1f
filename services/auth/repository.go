package auth

import (
	"context"

	"github.com/arkananta/rantai/internal/pkg/models"
)

// OTPRepo stores at most one active OTP record per mobile number
type OTPRepo interface {
	// Store writes the record, overwriting any prior record for the mobile
	Store(ctx context.Context, otp *models.OTP) error
	// Get returns the active record, or nil when none exists
	Get(ctx context.Context, mobile string) (*models.OTP, error)
	// Delete removes the record for the mobile, if any
	Delete(ctx context.Context, mobile string) error
}

// UserRepo resolves identities from the static user directory
type UserRepo interface {
	// GetByMobile returns the user registered under the mobile number, or nil
	GetByMobile(ctx context.Context, mobile string) (*models.User, error)
	// ListByRole returns all users holding the given role
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
}
