package repository

import (
	"context"
	"sync"

	"github.com/arkananta/rantai/internal/pkg/models"
)

// MemoryOTPRepo keeps OTP records in process memory, one active record per
// mobile number. State lives for the process lifetime only.
type MemoryOTPRepo struct {
	mu      sync.RWMutex
	records map[string]models.OTP
}

// NewMemoryOTPRepo creates an empty in-memory OTP store
func NewMemoryOTPRepo() *MemoryOTPRepo {
	return &MemoryOTPRepo{
		records: make(map[string]models.OTP),
	}
}

// Store writes the record, overwriting any prior record for the mobile.
// Last send wins.
func (r *MemoryOTPRepo) Store(_ context.Context, otp *models.OTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[otp.Mobile] = *otp
	return nil
}

// Get returns a copy of the active record, or nil when none exists
func (r *MemoryOTPRepo) Get(_ context.Context, mobile string) (*models.OTP, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[mobile]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Delete removes the record for the mobile, if any
func (r *MemoryOTPRepo) Delete(_ context.Context, mobile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, mobile)
	return nil
}
