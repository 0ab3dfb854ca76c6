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
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products with pagination.
func (s *productService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// Create adds a new product to the catalogue.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, fmt.Errorf("product request is nil")
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, model.ErrMissingName
	}
	if req.Price.IsNegative() {
		return nil, model.ErrInvalidPrice
	}
	if req.MinOrder < 1 {
		return nil, model.ErrInvalidMinOrder
	}

	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		MinOrder:    req.MinOrder,
		InStock:     req.InStock,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// Update applies a partial update with last-writer-wins semantics on the
// supplied fields.
func (s *productService) Update(ctx context.Context, id uuid.UUID, update model.ProductUpdate) (*model.Product, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, model.ErrMissingName
	}
	if update.Price != nil && update.Price.IsNegative() {
		return nil, model.ErrInvalidPrice
	}
	if update.MinOrder != nil && *update.MinOrder < 1 {
		return nil, model.ErrInvalidMinOrder
	}

	product, err := s.repo.Update(ctx, id, update)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")

	return product, nil
}
