package service

import (
	"context"
	"fmt"

	"green-basket/internal/model"
	"green-basket/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the user's cart. The total is an estimate computed from
// current catalogue prices; checkout recomputes it authoritatively.
func (s *cartService) Get(ctx context.Context, userID string) (*model.Cart, error) {
	lines, err := s.cartRepo.GetLines(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	cart := &model.Cart{
		Lines: lines,
		Total: decimal.Zero,
	}
	if len(lines) == 0 {
		return cart, nil
	}

	ids := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to price cart: %w", err)
	}

	prices := make(map[uuid.UUID]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	for _, line := range lines {
		price, ok := prices[line.ProductID]
		if !ok {
			// Product deleted since the line was stored; it contributes
			// nothing to the estimate and fails checkout instead.
			continue
		}
		cart.Total = cart.Total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return cart, nil
}

// AddLine adds quantity to the user's line for a product. The product is
// re-read so stock and minimum order reflect the live catalogue.
func (s *cartService) AddLine(ctx context.Context, userID string, productID uuid.UUID, quantity int) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to add cart line: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if !product.InStock {
		s.logger.Warn().
			Str("user_id", userID).
			Str("product_id", productID.String()).
			Msg("attempt to add out-of-stock product")
		return model.ErrProductUnavailable
	}

	if quantity < product.MinOrder {
		s.logger.Debug().
			Str("product_id", productID.String()).
			Int("quantity", quantity).
			Int("min_order", product.MinOrder).
			Msg("quantity below minimum order")
		return model.ErrQuantityBelowMinimum
	}

	if err := s.cartRepo.AddQuantity(ctx, userID, productID, quantity); err != nil {
		return err
	}

	s.logger.Debug().
		Str("user_id", userID).
		Str("product_id", productID.String()).
		Int("quantity", quantity).
		Msg("cart line added")

	return nil
}

// SetQuantity replaces the stored quantity for a product line. The minimum
// order is re-read from the catalogue, never taken from cached cart state.
func (s *cartService) SetQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to set cart quantity: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if quantity < product.MinOrder {
		s.logger.Debug().
			Str("product_id", productID.String()).
			Int("quantity", quantity).
			Int("min_order", product.MinOrder).
			Msg("quantity below minimum order")
		return model.ErrQuantityBelowMinimum
	}

	return s.cartRepo.SetQuantity(ctx, userID, productID, quantity)
}

// RemoveLine deletes the line if present.
func (s *cartService) RemoveLine(ctx context.Context, userID string, productID uuid.UUID) error {
	return s.cartRepo.DeleteLine(ctx, userID, productID)
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context, userID string) error {
	return s.cartRepo.Clear(ctx, userID)
}
