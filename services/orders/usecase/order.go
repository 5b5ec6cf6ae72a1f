package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arkananta/rantai/internal/pkg/apperrors"
	"github.com/arkananta/rantai/internal/pkg/logger"
	"github.com/arkananta/rantai/internal/pkg/models"
	"github.com/arkananta/rantai/services/orders"
)

// OrderUC implements the order splitting use case
type OrderUC struct {
	orderRepo orders.OrderRepo
	directory orders.UserDirectory
	orderGW   orders.OrderGW
}

// NewOrderUC creates a new order use case. orderGW may be nil when event
// publishing is disabled.
func NewOrderUC(orderRepo orders.OrderRepo, directory orders.UserDirectory, orderGW orders.OrderGW) *OrderUC {
	return &OrderUC{
		orderRepo: orderRepo,
		directory: directory,
		orderGW:   orderGW,
	}
}

// PlaceOrder partitions the submitted items by manufacturer, preserving the
// relative item order within each group and the first-appearance order of
// manufacturers, then commits one sub-order per manufacturer as a single
// atomic unit.
func (u *OrderUC) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.PlaceOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.ErrInvalidOrderItems
	}
	for _, item := range req.Items {
		if item.ManufacturerID == "" {
			return nil, fmt.Errorf("%w: item is missing a manufacturer id", apperrors.ErrInvalidOrderItems)
		}
	}

	// Group items by manufacturer, keyed list kept in first-appearance order
	manufacturerIDs := make([]string, 0, len(req.Items))
	groups := make(map[string][]models.OrderItem)
	for _, item := range req.Items {
		if _, seen := groups[item.ManufacturerID]; !seen {
			manufacturerIDs = append(manufacturerIDs, item.ManufacturerID)
		}
		groups[item.ManufacturerID] = append(groups[item.ManufacturerID], item)
	}

	now := time.Now()
	subOrders := make([]models.ManufacturerOrder, 0, len(manufacturerIDs))
	for _, manufacturerID := range manufacturerIDs {
		subOrders = append(subOrders, models.ManufacturerOrder{
			ShopkeeperID:   req.ShopkeeperID,
			ManufacturerID: manufacturerID,
			Items:          groups[manufacturerID],
			Status:         models.OrderStatusPending,
			CreatedAt:      now,
		})
	}

	orderIDs, err := u.orderRepo.CreateOrders(ctx, subOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to create orders: %w", err)
	}

	logger.Info("Order split into sub-orders",
		logger.String("shopkeeper_id", req.ShopkeeperID),
		logger.Int("item_count", len(req.Items)),
		logger.Int64s("order_ids", orderIDs))

	// Events go out only after the log commit; a publish failure never rolls
	// back a committed order.
	if u.orderGW != nil {
		for i, manufacturerID := range manufacturerIDs {
			event := &models.ManufacturerOrder{
				OrderID:        orderIDs[i],
				ShopkeeperID:   req.ShopkeeperID,
				ManufacturerID: manufacturerID,
				Items:          groups[manufacturerID],
				Status:         models.OrderStatusPending,
				CreatedAt:      now,
			}
			if err := u.orderGW.PublishOrderCreated(ctx, event); err != nil {
				logger.Warn("Failed to publish order created event",
					logger.Int64("order_id", orderIDs[i]),
					logger.Err(err))
			}
		}
	}

	return &models.PlaceOrderResponse{
		Message:  "Order placed successfully",
		OrderIDs: orderIDs,
	}, nil
}

// ListForManufacturer returns the sub-orders routed to one manufacturer
func (u *OrderUC) ListForManufacturer(ctx context.Context, manufacturerID string) ([]models.ManufacturerOrder, error) {
	matched, err := u.orderRepo.ListByManufacturer(ctx, manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list manufacturer orders: %w", err)
	}
	return matched, nil
}

// ListAll returns the full order log
func (u *OrderUC) ListAll(ctx context.Context) ([]models.ManufacturerOrder, error) {
	all, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return all, nil
}

// AdminDirectory returns the registered manufacturers and transporters
func (u *OrderUC) AdminDirectory(ctx context.Context) (*models.AdminDirectory, error) {
	manufacturers, err := u.directory.ListByRole(ctx, models.RoleManufacturer)
	if err != nil {
		return nil, fmt.Errorf("failed to list manufacturers: %w", err)
	}

	transporters, err := u.directory.ListByRole(ctx, models.RoleTransporter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transporters: %w", err)
	}

	return &models.AdminDirectory{
		Manufacturers: manufacturers,
		Transporters:  transporters,
	}, nil
}
