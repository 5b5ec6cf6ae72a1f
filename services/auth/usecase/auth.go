package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/arkananta/rantai/internal/pkg/apperrors"
	jwtpkg "github.com/arkananta/rantai/internal/pkg/jwt"
	"github.com/arkananta/rantai/internal/pkg/logger"
	"github.com/arkananta/rantai/internal/pkg/models"
	"github.com/arkananta/rantai/internal/utils"
	"github.com/arkananta/rantai/services/auth"
)

// AuthUC implements the authentication use case
type AuthUC struct {
	otpRepo  auth.OTPRepo
	userRepo auth.UserRepo
	smsGW    auth.SMSGW
	cfg      *models.Config
}

// NewAuthUC creates a new authentication use case
func NewAuthUC(otpRepo auth.OTPRepo, userRepo auth.UserRepo, smsGW auth.SMSGW, cfg *models.Config) *AuthUC {
	return &AuthUC{
		otpRepo:  otpRepo,
		userRepo: userRepo,
		smsGW:    smsGW,
		cfg:      cfg,
	}
}

// GenerateOTP issues a fresh 6-digit code for the mobile number, overwriting
// any unconsumed prior code, and dispatches it over the SMS channel.
// The record stays committed even when delivery fails, so the caller may
// retry send-otp without a stale-code window.
func (u *AuthUC) GenerateOTP(ctx context.Context, mobile string) error {
	normalized, err := utils.NormalizeMobile(mobile)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMobileRequired, err)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	now := time.Now()
	otp := &models.OTP{
		Mobile:    normalized,
		Code:      code,
		CreatedAt: now,
	}
	if u.cfg.OTP.TTLSeconds > 0 {
		otp.ExpiresAt = now.Add(time.Duration(u.cfg.OTP.TTLSeconds) * time.Second)
	}

	if err := u.otpRepo.Store(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := u.smsGW.SendOTP(ctx, normalized, code); err != nil {
		logger.Error("OTP delivery failed",
			logger.String("mobile", normalized),
			logger.Err(err))
		return fmt.Errorf("%w: %v", apperrors.ErrOTPDelivery, err)
	}

	logger.Info("OTP issued",
		logger.String("mobile", normalized),
		logger.Int("ttl_seconds", u.cfg.OTP.TTLSeconds))

	return nil
}

// VerifyOTP validates the submitted code for the mobile number. A matching
// code is consumed, an expired record is deleted, and a mismatched code
// leaves the record in place so the caller may retry within the TTL.
func (u *AuthUC) VerifyOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error) {
	normalized, err := utils.NormalizeMobile(mobile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMobileRequired, err)
	}

	otp, err := u.otpRepo.Get(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	if otp == nil {
		return nil, apperrors.ErrOTPNotFound
	}

	if otp.Expired(time.Now()) {
		if err := u.otpRepo.Delete(ctx, normalized); err != nil {
			return nil, fmt.Errorf("failed to delete expired OTP: %w", err)
		}
		return nil, apperrors.ErrOTPExpired
	}

	if !codesMatch(otp.Code, code) {
		return nil, apperrors.ErrOTPInvalid
	}

	// Single use: consume the record before resolving identity
	if err := u.otpRepo.Delete(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}

	user, err := u.userRepo.GetByMobile(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	response := &models.AuthResponse{
		Success: true,
		UserID:  user.ID,
		Role:    user.Role,
	}

	if u.cfg.JWT.Secret != "" {
		token, expiresAt, err := jwtpkg.GenerateToken(user.ID, normalized, user.Role, u.cfg.JWT)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		response.Token = token
		response.ExpiresAt = expiresAt
	}

	logger.Info("OTP verified",
		logger.String("mobile", normalized),
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)))

	return response, nil
}

// generateCode returns a uniformly random 6-digit code in [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// codesMatch compares codes as decimal integers after trimming, so numeric
// submissions survive client-side type coercion
func codesMatch(stored, submitted string) bool {
	storedN, err := strconv.Atoi(strings.TrimSpace(stored))
	if err != nil {
		return false
	}
	submittedN, err := strconv.Atoi(strings.TrimSpace(submitted))
	if err != nil {
		return false
	}
	return storedN == submittedN
}
