package service

import (
	"context"

	"green-basket/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create adds a new product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update applies a partial update to a product.
	Update(ctx context.Context, id uuid.UUID, update model.ProductUpdate) (*model.Product, error)
}

// LandmarkService defines operations for delivery landmarks.
type LandmarkService interface {
	// GetAll retrieves all landmarks.
	GetAll(ctx context.Context) ([]model.Landmark, error)

	// Create adds a new delivery landmark.
	Create(ctx context.Context, req *model.LandmarkRequest) (*model.Landmark, error)
}

// CartService defines operations on a user's cart. Every mutation
// revalidates against the live catalogue; the cart never becomes an
// independent source of truth for price or stock.
type CartService interface {
	// Get retrieves the user's cart with a total estimated from current
	// catalogue prices.
	Get(ctx context.Context, userID string) (*model.Cart, error)

	// AddLine adds quantity to the user's line for a product, creating the
	// line if absent.
	AddLine(ctx context.Context, userID string, productID uuid.UUID, quantity int) error

	// SetQuantity replaces the stored quantity for a product line.
	SetQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error

	// RemoveLine deletes the line if present; removing an absent line is
	// not an error.
	RemoveLine(ctx context.Context, userID string, productID uuid.UUID) error

	// Clear empties the cart.
	Clear(ctx context.Context, userID string) error
}

// OrderService defines operations for placing and reading orders.
type OrderService interface {
	// PlaceOrder converts the user's cart and delivery selection into a
	// persisted order with line items, atomically.
	PlaceOrder(ctx context.Context, userID string, req *model.OrderRequest) (*model.Order, error)

	// GetByUser retrieves all orders belonging to a user.
	GetByUser(ctx context.Context, userID string) ([]model.Order, error)

	// GetItems retrieves the items of one of the user's own orders.
	GetItems(ctx context.Context, userID string, orderID uuid.UUID) ([]model.OrderItem, error)

	// UpdateStatus transitions an order's status (administrative).
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error)
}
