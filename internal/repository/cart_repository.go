package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"green-basket/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// GetLines retrieves all cart lines for a user.
func (r *cartRepository) GetLines(ctx context.Context, userID string) ([]model.CartLine, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY updated_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query cart lines")
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var line model.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.UpdatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart line row")
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart line rows")
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}

// AddQuantity adds quantity to an existing line, or creates the line if the
// user has none for the product.
func (r *cartRepository) AddQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.pool.Exec(ctx, query, userID, productID, quantity, time.Now()); err != nil {
		return r.mapLineError(err, userID, productID, "failed to add cart line quantity")
	}

	return nil
}

// SetQuantity replaces the stored quantity, creating the line if absent.
func (r *cartRepository) SetQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.pool.Exec(ctx, query, userID, productID, quantity, time.Now()); err != nil {
		return r.mapLineError(err, userID, productID, "failed to set cart line quantity")
	}

	return nil
}

// DeleteLine removes a line if present.
func (r *cartRepository) DeleteLine(ctx context.Context, userID string, productID uuid.UUID) error {
	query := `
		DELETE FROM cart_items
		WHERE user_id = $1 AND product_id = $2
	`

	if _, err := r.pool.Exec(ctx, query, userID, productID); err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", productID.String()).
			Msg("failed to delete cart line")
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	return nil
}

// Clear removes all lines for a user.
func (r *cartRepository) Clear(ctx context.Context, userID string) error {
	query := `
		DELETE FROM cart_items
		WHERE user_id = $1
	`

	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// GetCheckoutLines reads the user's cart lines joined with live product state
// inside the given transaction. The FOR UPDATE lock on the cart rows
// serialises concurrent checkouts of the same cart: a duplicate submission
// blocks here until the first commit empties the cart.
func (r *cartRepository) GetCheckoutLines(ctx context.Context, tx pgx.Tx, userID string) ([]model.CheckoutLine, error) {
	query := `
		SELECT ci.product_id, ci.quantity, p.price, p.min_order, p.in_stock
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.updated_at
		FOR UPDATE OF ci
	`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query checkout lines")
		return nil, fmt.Errorf("failed to query checkout lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CheckoutLine
	for rows.Next() {
		var line model.CheckoutLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.Price, &line.MinOrder, &line.InStock); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan checkout line row")
			return nil, fmt.Errorf("failed to scan checkout line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating checkout line rows")
		return nil, fmt.Errorf("error iterating checkout lines: %w", err)
	}

	return lines, nil
}

// ClearTx removes all lines for a user within the provided transaction.
func (r *cartRepository) ClearTx(ctx context.Context, tx pgx.Tx, userID string) error {
	query := `
		DELETE FROM cart_items
		WHERE user_id = $1
	`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart in transaction")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// mapLineError translates a foreign-key violation on the product reference
// into the domain's missing-product error.
func (r *cartRepository) mapLineError(err error, userID string, productID uuid.UUID, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		r.logger.Warn().
			Str("user_id", userID).
			Str("product_id", productID.String()).
			Msg("cart line references missing product")
		return model.ErrProductNotFound
	}

	r.logger.Error().Err(err).
		Str("user_id", userID).
		Str("product_id", productID.String()).
		Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
