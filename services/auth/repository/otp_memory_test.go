package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arkananta/rantai/internal/pkg/models"
)

func TestMemoryOTPRepo_StoreAndGet(t *testing.T) {
	// Arrange
	repo := NewMemoryOTPRepo()
	ctx := context.Background()
	now := time.Now()

	otp := &models.OTP{
		Mobile:    "9999999999",
		Code:      "123456",
		CreatedAt: now,
		ExpiresAt: now.Add(2 * time.Minute),
	}

	// Act
	err := repo.Store(ctx, otp)
	got, getErr := repo.Get(ctx, "9999999999")

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, getErr)
	assert.NotNil(t, got)
	assert.Equal(t, "123456", got.Code)
	assert.Equal(t, otp.ExpiresAt, got.ExpiresAt)
}

func TestMemoryOTPRepo_GetUnknownMobile(t *testing.T) {
	// Arrange
	repo := NewMemoryOTPRepo()

	// Act
	got, err := repo.Get(context.Background(), "0000000000")

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryOTPRepo_StoreOverwrites(t *testing.T) {
	// Arrange
	repo := NewMemoryOTPRepo()
	ctx := context.Background()

	assert.NoError(t, repo.Store(ctx, &models.OTP{Mobile: "9999999999", Code: "111111"}))
	assert.NoError(t, repo.Store(ctx, &models.OTP{Mobile: "9999999999", Code: "222222"}))

	// Act
	got, err := repo.Get(ctx, "9999999999")

	// Assert: last send wins
	assert.NoError(t, err)
	assert.Equal(t, "222222", got.Code)
}

func TestMemoryOTPRepo_Delete(t *testing.T) {
	// Arrange
	repo := NewMemoryOTPRepo()
	ctx := context.Background()
	assert.NoError(t, repo.Store(ctx, &models.OTP{Mobile: "9999999999", Code: "123456"}))

	// Act
	err := repo.Delete(ctx, "9999999999")
	got, getErr := repo.Get(ctx, "9999999999")

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, getErr)
	assert.Nil(t, got)
}

func TestMemoryOTPRepo_DeleteUnknownMobileIsNoop(t *testing.T) {
	// Arrange
	repo := NewMemoryOTPRepo()

	// Act
	err := repo.Delete(context.Background(), "0000000000")

	// Assert
	assert.NoError(t, err)
}

func TestMemoryOTPRepo_GetReturnsCopy(t *testing.T) {
	// Arrange
	repo := NewMemoryOTPRepo()
	ctx := context.Background()
	assert.NoError(t, repo.Store(ctx, &models.OTP{Mobile: "9999999999", Code: "123456"}))

	// Act: mutating the returned record must not touch the stored one
	first, _ := repo.Get(ctx, "9999999999")
	first.Code = "tampered"
	second, _ := repo.Get(ctx, "9999999999")

	// Assert
	assert.Equal(t, "123456", second.Code)
}
