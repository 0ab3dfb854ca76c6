package repository

import (
	"context"
	"fmt"

	"green-basket/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// landmarkRepository implements the LandmarkRepository interface using PostgreSQL.
type landmarkRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewLandmarkRepository creates a new PostgreSQL-backed landmark repository.
func NewLandmarkRepository(pool *pgxpool.Pool, logger zerolog.Logger) LandmarkRepository {
	return &landmarkRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "landmark").Logger(),
	}
}

// GetAll retrieves all landmarks.
func (r *landmarkRepository) GetAll(ctx context.Context) ([]model.Landmark, error) {
	query := `
		SELECT id, name, delivery_fee
		FROM landmarks
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query landmarks")
		return nil, fmt.Errorf("failed to query landmarks: %w", err)
	}
	defer rows.Close()

	var landmarks []model.Landmark
	for rows.Next() {
		var l model.Landmark
		if err := rows.Scan(&l.ID, &l.Name, &l.DeliveryFee); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan landmark row")
			return nil, fmt.Errorf("failed to scan landmark: %w", err)
		}
		landmarks = append(landmarks, l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating landmark rows")
		return nil, fmt.Errorf("error iterating landmarks: %w", err)
	}

	return landmarks, nil
}

// GetByID retrieves a landmark by its ID.
func (r *landmarkRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Landmark, error) {
	query := `
		SELECT id, name, delivery_fee
		FROM landmarks
		WHERE id = $1
	`

	var l model.Landmark
	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name, &l.DeliveryFee)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("landmark_id", id.String()).Msg("landmark not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("landmark_id", id.String()).Msg("failed to query landmark")
		return nil, fmt.Errorf("failed to query landmark: %w", err)
	}

	return &l, nil
}

// Create inserts a new landmark.
func (r *landmarkRepository) Create(ctx context.Context, landmark *model.Landmark) error {
	query := `
		INSERT INTO landmarks (id, name, delivery_fee)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, landmark.ID, landmark.Name, landmark.DeliveryFee)
	if err != nil {
		r.logger.Error().Err(err).Str("landmark_id", landmark.ID.String()).Msg("failed to create landmark")
		return fmt.Errorf("failed to create landmark: %w", err)
	}

	return nil
}
