package models

import (
	"time"
)

// OrderStatus tracks the lifecycle of a manufacturer order
type OrderStatus string

const (
	// OrderStatusPending is the only status the splitter ever assigns;
	// downstream fulfilment advances it elsewhere.
	OrderStatusPending OrderStatus = "pending"
)

// OrderItem is a single line of a shopkeeper order, addressed to one manufacturer
type OrderItem struct {
	ManufacturerID string `json:"manufacturerId"`
	Product        string `json:"product"`
	Quantity       int    `json:"quantity"`
}

// ManufacturerOrder is the portion of a shopkeeper order routed to one
// manufacturer. It is append-only: the splitter never mutates it after creation.
type ManufacturerOrder struct {
	OrderID        int64       `json:"orderId"`
	ShopkeeperID   string      `json:"shopkeeperId,omitempty"`
	ManufacturerID string      `json:"manufacturerId"`
	Items          []OrderItem `json:"items"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// PlaceOrderRequest represents a shopkeeper order submission
type PlaceOrderRequest struct {
	ShopkeeperID string      `json:"shopkeeperId"`
	Items        []OrderItem `json:"items"`
}

// PlaceOrderResponse reports the sub-orders created from one submission
type PlaceOrderResponse struct {
	Message  string  `json:"message"`
	OrderIDs []int64 `json:"orderIds"`
}

// OrderCreatedEvent is published after a manufacturer order is committed
type OrderCreatedEvent struct {
	OrderID        int64     `json:"order_id"`
	ShopkeeperID   string    `json:"shopkeeper_id,omitempty"`
	ManufacturerID string    `json:"manufacturer_id"`
	ItemCount      int       `json:"item_count"`
	CreatedAt      time.Time `json:"created_at"`
}
