package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one product-quantity pairing within a user's cart. It holds a
// reference to the product, never a copy, so price and stock are always
// re-read from the catalogue.
type CartLine struct {
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// Cart is the materialised view of a user's cart: the stored lines plus a
// total estimated from current catalogue prices. The total is not
// authoritative for any order; checkout recomputes it.
type Cart struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// CartLineRequest represents the request payload for adding or updating a
// cart line.
type CartLineRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// CheckoutLine is a cart line joined with the live product state read inside
// the checkout transaction.
type CheckoutLine struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
	MinOrder  int
	InStock   bool
}
