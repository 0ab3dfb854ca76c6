package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Landmark is a named delivery destination with a flat delivery fee.
type Landmark struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	DeliveryFee decimal.Decimal `json:"deliveryFee" db:"delivery_fee"`
}

// LandmarkRequest represents the request payload for creating a landmark.
type LandmarkRequest struct {
	Name        string          `json:"name"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
}
