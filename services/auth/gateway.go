package auth

import (
	"context"
)

// SMSGW dispatches OTP codes over an external SMS channel
type SMSGW interface {
	SendOTP(ctx context.Context, mobile, code string) error
}
