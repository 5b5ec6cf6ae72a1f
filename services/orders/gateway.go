package orders

import (
	"context"

	"github.com/arkananta/rantai/internal/pkg/models"
)

// OrderGW publishes order lifecycle events for downstream consumers
type OrderGW interface {
	PublishOrderCreated(ctx context.Context, order *models.ManufacturerOrder) error
}
