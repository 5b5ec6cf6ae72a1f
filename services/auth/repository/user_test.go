package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkananta/rantai/internal/pkg/models"
)

func TestUserDirectoryRepo_GetByMobile(t *testing.T) {
	// Arrange
	repo := NewUserDirectoryRepo(DefaultSeed)

	// Act
	user, err := repo.GetByMobile(context.Background(), "9999999999")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "A1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUserDirectoryRepo_GetByMobileUnknown(t *testing.T) {
	// Arrange
	repo := NewUserDirectoryRepo(DefaultSeed)

	// Act
	user, err := repo.GetByMobile(context.Background(), "1234567890")

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserDirectoryRepo_ListByRoleManufacturers(t *testing.T) {
	// Arrange
	repo := NewUserDirectoryRepo(DefaultSeed)

	// Act
	manufacturers, err := repo.ListByRole(context.Background(), models.RoleManufacturer)

	// Assert: seed order is preserved
	assert.NoError(t, err)
	assert.Len(t, manufacturers, 2)
	assert.Equal(t, "M1", manufacturers[0].ID)
	assert.Equal(t, "M2", manufacturers[1].ID)
}

func TestUserDirectoryRepo_ListByRoleNoMatch(t *testing.T) {
	// Arrange
	repo := NewUserDirectoryRepo([]models.User{
		{ID: "A1", Mobile: "9999999999", Role: models.RoleAdmin},
	})

	// Act
	transporters, err := repo.ListByRole(context.Background(), models.RoleTransporter)

	// Assert: empty slice, not nil
	assert.NoError(t, err)
	assert.NotNil(t, transporters)
	assert.Empty(t, transporters)
}
