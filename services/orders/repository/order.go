package repository

import (
	"context"
	"sync"

	"github.com/arkananta/rantai/internal/pkg/models"
)

// MemoryOrderRepo is the in-memory manufacturer order log. One mutex guards
// both the log and the id counter, so allocate-and-append is a single
// critical section and concurrent placements can never duplicate an id.
type MemoryOrderRepo struct {
	mu      sync.RWMutex
	log     []models.ManufacturerOrder
	counter int64
}

// NewMemoryOrderRepo creates an empty order log with the counter at zero
func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{}
}

// CreateOrders assigns each order the next counter value and appends it to
// the log atomically. Either all orders commit or none do.
func (r *MemoryOrderRepo) CreateOrders(_ context.Context, orders []models.ManufacturerOrder) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(orders))
	for _, order := range orders {
		r.counter++
		order.OrderID = r.counter
		r.log = append(r.log, order)
		ids = append(ids, order.OrderID)
	}

	return ids, nil
}

// ListByManufacturer returns the orders for one manufacturer in insertion
// order. An unknown manufacturer yields an empty slice, not an error.
func (r *MemoryOrderRepo) ListByManufacturer(_ context.Context, manufacturerID string) ([]models.ManufacturerOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.ManufacturerOrder, 0)
	for _, order := range r.log {
		if order.ManufacturerID == manufacturerID {
			matched = append(matched, order)
		}
	}

	return matched, nil
}

// ListAll returns a copy of the full log in insertion order
func (r *MemoryOrderRepo) ListAll(_ context.Context) ([]models.ManufacturerOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.ManufacturerOrder, len(r.log))
	copy(all, r.log)

	return all, nil
}
