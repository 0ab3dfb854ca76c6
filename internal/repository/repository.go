package repository

import (
	"context"

	"green-basket/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update applies a partial update and returns the updated product.
	// Returns nil when the product does not exist.
	Update(ctx context.Context, id uuid.UUID, update model.ProductUpdate) (*model.Product, error)
}

// LandmarkRepository defines the interface for delivery landmark data access.
type LandmarkRepository interface {
	// GetAll retrieves all landmarks.
	GetAll(ctx context.Context) ([]model.Landmark, error)

	// GetByID retrieves a landmark by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Landmark, error)

	// Create inserts a new landmark.
	Create(ctx context.Context, landmark *model.Landmark) error
}

// CartRepository defines the interface for persisted cart line access.
// A cart is identified by its owning user; lines are keyed by product.
type CartRepository interface {
	// GetLines retrieves all cart lines for a user.
	GetLines(ctx context.Context, userID string) ([]model.CartLine, error)

	// AddQuantity adds quantity to an existing line, or creates the line
	// if the user has none for the product.
	AddQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error

	// SetQuantity replaces the stored quantity, creating the line if absent.
	SetQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error

	// DeleteLine removes a line if present. Deleting an absent line is not
	// an error.
	DeleteLine(ctx context.Context, userID string, productID uuid.UUID) error

	// Clear removes all lines for a user.
	Clear(ctx context.Context, userID string) error

	// GetCheckoutLines reads the user's cart lines joined with live product
	// state inside the given transaction, locking the lines against
	// concurrent checkouts of the same cart.
	GetCheckoutLines(ctx context.Context, tx pgx.Tx, userID string) ([]model.CheckoutLine, error)

	// ClearTx removes all lines for a user within the provided transaction.
	ClearTx(ctx context.Context, tx pgx.Tx, userID string) error
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByUser retrieves all orders belonging to a user, newest first.
	GetByUser(ctx context.Context, userID string) ([]model.Order, error)

	// GetItems retrieves the items of an order.
	GetItems(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error)

	// UpdateStatus transitions an order's status and returns the updated
	// order. Returns nil when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
}
