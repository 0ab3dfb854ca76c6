package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"green-basket/internal/model"
	"green-basket/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	landmarkRepo repository.LandmarkRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	landmarkRepo repository.LandmarkRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		landmarkRepo: landmarkRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder converts the user's cart and delivery selection into one order
// with line items. The whole operation runs in a single transaction: either
// the order and every item are persisted and the cart is cleared, or nothing
// is.
func (s *orderService) PlaceOrder(ctx context.Context, userID string, req *model.OrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, fmt.Errorf("order request is nil")
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	// Locking the cart rows serialises concurrent checkouts of this cart;
	// a duplicate submission ends up reading an empty cart.
	lines, err := s.cartRepo.GetCheckoutLines(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if len(lines) == 0 {
		err = model.ErrEmptyCart
		return nil, err
	}

	landmark, err := s.landmarkRepo.GetByID(ctx, req.LandmarkID)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	if landmark == nil {
		err = model.ErrLandmarkNotFound
		return nil, err
	}

	if strings.TrimSpace(req.Address) == "" {
		err = model.ErrMissingAddress
		return nil, err
	}

	if !req.DeliveryMode.Valid() {
		err = model.ErrInvalidDeliveryMode
		return nil, err
	}

	// Total uses the prices read in this transaction; a client-supplied
	// total is never trusted. The same prices become the item snapshots.
	total := landmark.DeliveryFee
	for _, line := range lines {
		if !line.InStock {
			s.logger.Warn().
				Str("user_id", userID).
				Str("product_id", line.ProductID.String()).
				Msg("cart references out-of-stock product")
			err = model.ErrProductUnavailable
			return nil, err
		}
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := &model.Order{
		ID:            uuid.New(),
		UserID:        userID,
		LandmarkID:    landmark.ID,
		Address:       req.Address,
		DeliveryMode:  req.DeliveryMode,
		Total:         total,
		RecurringDays: req.RecurringDays,
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	items := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = s.cartRepo.ClearTx(ctx, tx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", userID).
		Int("item_count", len(items)).
		Str("total", order.Total.String()).
		Msg("order placed")

	return order, nil
}

// GetByUser retrieves all orders belonging to a user.
func (s *orderService) GetByUser(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// GetItems retrieves the items of one of the user's own orders. Orders
// belonging to other users are reported as not found rather than forbidden,
// so order ids do not leak across users.
func (s *orderService) GetItems(ctx context.Context, userID string, orderID uuid.UUID) ([]model.OrderItem, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	if order == nil || order.UserID != userID {
		return nil, model.ErrOrderNotFound
	}

	items, err := s.orderRepo.GetItems(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order items")
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

// UpdateStatus transitions an order's status. Only the status may ever
// change on a persisted order.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return order, nil
}
