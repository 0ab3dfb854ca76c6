package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryMode describes how an order reaches the customer.
type DeliveryMode string

const (
	DeliveryModeDelivery DeliveryMode = "delivery"
	DeliveryModePickUp   DeliveryMode = "pickup"
)

// Valid reports whether the delivery mode is one of the enumerated values.
func (m DeliveryMode) Valid() bool {
	return m == DeliveryModeDelivery || m == DeliveryModePickUp
}

// OrderStatus describes the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the enumerated values.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order represents a placed customer order. Orders are immutable after
// creation except for status transitions.
type Order struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        string          `json:"userId" db:"user_id"`
	LandmarkID    uuid.UUID       `json:"landmarkId" db:"landmark_id"`
	Address       string          `json:"address" db:"address"`
	DeliveryMode  DeliveryMode    `json:"deliveryMode" db:"delivery_mode"`
	Total         decimal.Decimal `json:"total" db:"total"`
	RecurringDays *int            `json:"recurringDays,omitempty" db:"recurring_days"`
	Status        OrderStatus     `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in an order. Price is a snapshot of the
// product price at order time and never changes afterwards.
type OrderItem struct {
	ID        uuid.UUID       `json:"-" db:"id"`
	OrderID   uuid.UUID       `json:"-" db:"order_id"`
	ProductID uuid.UUID       `json:"productId" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"`
}

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	LandmarkID    uuid.UUID    `json:"landmarkId"`
	Address       string       `json:"address"`
	DeliveryMode  DeliveryMode `json:"deliveryMode"`
	RecurringDays *int         `json:"recurringDays,omitempty"`
}
