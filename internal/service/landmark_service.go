package service

import (
	"context"
	"fmt"
	"strings"

	"green-basket/internal/model"
	"green-basket/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// landmarkService implements LandmarkService.
type landmarkService struct {
	repo   repository.LandmarkRepository
	logger zerolog.Logger
}

// NewLandmarkService creates a new landmark service.
func NewLandmarkService(repo repository.LandmarkRepository, logger zerolog.Logger) LandmarkService {
	return &landmarkService{
		repo:   repo,
		logger: logger.With().Str("service", "landmark").Logger(),
	}
}

// GetAll retrieves all landmarks.
func (s *landmarkService) GetAll(ctx context.Context) ([]model.Landmark, error) {
	landmarks, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get landmarks")
		return nil, fmt.Errorf("failed to get landmarks: %w", err)
	}
	return landmarks, nil
}

// Create adds a new delivery landmark.
func (s *landmarkService) Create(ctx context.Context, req *model.LandmarkRequest) (*model.Landmark, error) {
	if req == nil {
		return nil, fmt.Errorf("landmark request is nil")
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, model.ErrMissingName
	}
	if req.DeliveryFee.IsNegative() {
		return nil, model.ErrInvalidDeliveryFee
	}

	landmark := &model.Landmark{
		ID:          uuid.New(),
		Name:        req.Name,
		DeliveryFee: req.DeliveryFee,
	}

	if err := s.repo.Create(ctx, landmark); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create landmark")
		return nil, fmt.Errorf("failed to create landmark: %w", err)
	}

	s.logger.Info().
		Str("landmark_id", landmark.ID.String()).
		Str("name", landmark.Name).
		Msg("landmark created")

	return landmark, nil
}
