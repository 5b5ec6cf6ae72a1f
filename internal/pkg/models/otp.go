package models

import (
	"time"
)

// OTP represents a one-time password issued to a mobile number.
// At most one record is active per mobile; a new send overwrites it.
type OTP struct {
	Mobile    string    `json:"mobile"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is zero when expiry is disabled.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is past its TTL at the given instant
func (o *OTP) Expired(now time.Time) bool {
	return !o.ExpiresAt.IsZero() && now.After(o.ExpiresAt)
}

// SendOTPRequest represents a request to issue an OTP
type SendOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Success   bool   `json:"success"`
	UserID    string `json:"userId"`
	Role      Role   `json:"role"`
	Token     string `json:"token,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}
