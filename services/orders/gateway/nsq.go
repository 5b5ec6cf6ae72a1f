package gateway

import (
	"context"
	"fmt"

	"github.com/arkananta/rantai/internal/pkg/models"
	nsqpkg "github.com/arkananta/rantai/internal/pkg/nsq"
)

// TopicOrderCreated is the NSQ topic for committed manufacturer orders
const TopicOrderCreated = "order.created"

// NSQOrderGW publishes order lifecycle events to NSQ
type NSQOrderGW struct {
	producer *nsqpkg.Producer
}

// NewNSQOrderGW creates an NSQ-backed order gateway
func NewNSQOrderGW(producer *nsqpkg.Producer) *NSQOrderGW {
	return &NSQOrderGW{producer: producer}
}

// PublishOrderCreated announces a committed manufacturer order
func (g *NSQOrderGW) PublishOrderCreated(_ context.Context, order *models.ManufacturerOrder) error {
	event := models.OrderCreatedEvent{
		OrderID:        order.OrderID,
		ShopkeeperID:   order.ShopkeeperID,
		ManufacturerID: order.ManufacturerID,
		ItemCount:      len(order.Items),
		CreatedAt:      order.CreatedAt,
	}

	if err := g.producer.Publish(TopicOrderCreated, event); err != nil {
		return fmt.Errorf("failed to publish order created event: %w", err)
	}

	return nil
}
