package orders

import (
	"context"

	"github.com/arkananta/rantai/internal/pkg/models"
)

// OrderUC defines the order splitting and retrieval operations
type OrderUC interface {
	// PlaceOrder splits a shopkeeper order into per-manufacturer sub-orders
	PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.PlaceOrderResponse, error)
	// ListForManufacturer returns the sub-orders routed to one manufacturer
	ListForManufacturer(ctx context.Context, manufacturerID string) ([]models.ManufacturerOrder, error)
	// ListAll returns the full order log in insertion order
	ListAll(ctx context.Context) ([]models.ManufacturerOrder, error)
	// AdminDirectory returns the registered manufacturers and transporters
	AdminDirectory(ctx context.Context) (*models.AdminDirectory, error)
}
