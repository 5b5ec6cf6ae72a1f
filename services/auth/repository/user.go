package repository

import (
	"context"

	"github.com/arkananta/rantai/internal/pkg/models"
)

// UserDirectoryRepo is the static user directory: a fixed seed of registered
// participants, immutable for the process lifetime, indexed by mobile number.
type UserDirectoryRepo struct {
	users    []models.User
	byMobile map[string]models.User
}

// DefaultSeed is the demo participant set
var DefaultSeed = []models.User{
	{ID: "A1", Mobile: "9999999999", Role: models.RoleAdmin},
	{ID: "M1", Mobile: "8888888888", Role: models.RoleManufacturer},
	{ID: "M2", Mobile: "8888888887", Role: models.RoleManufacturer},
	{ID: "S1", Mobile: "7777777777", Role: models.RoleShopkeeper},
	{ID: "T1", Mobile: "6666666666", Role: models.RoleTransporter},
}

// NewUserDirectoryRepo creates a directory from the given seed users
func NewUserDirectoryRepo(seed []models.User) *UserDirectoryRepo {
	byMobile := make(map[string]models.User, len(seed))
	for _, user := range seed {
		byMobile[user.Mobile] = user
	}

	return &UserDirectoryRepo{
		users:    seed,
		byMobile: byMobile,
	}
}

// GetByMobile returns the user registered under the mobile number, or nil
func (r *UserDirectoryRepo) GetByMobile(_ context.Context, mobile string) (*models.User, error) {
	user, ok := r.byMobile[mobile]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// ListByRole returns all users holding the given role, in seed order
func (r *UserDirectoryRepo) ListByRole(_ context.Context, role models.Role) ([]models.User, error) {
	matched := make([]models.User, 0)
	for _, user := range r.users {
		if user.Role == role {
			matched = append(matched, user)
		}
	}
	return matched, nil
}
