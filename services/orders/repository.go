package orders

import (
	"context"

	"github.com/arkananta/rantai/internal/pkg/models"
)

// OrderRepo is the append-only manufacturer order log plus its id counter
type OrderRepo interface {
	// CreateOrders assigns each order the next counter value and appends it
	// to the log, all inside one atomic step. Returns the assigned ids in
	// input order.
	CreateOrders(ctx context.Context, orders []models.ManufacturerOrder) ([]int64, error)
	// ListByManufacturer returns the orders for one manufacturer in insertion order
	ListByManufacturer(ctx context.Context, manufacturerID string) ([]models.ManufacturerOrder, error)
	// ListAll returns the full log in insertion order
	ListAll(ctx context.Context) ([]models.ManufacturerOrder, error)
}

// UserDirectory is the slice of the user directory the order service reads
type UserDirectory interface {
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
}
