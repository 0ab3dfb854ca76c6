//go:build ignore

// Seeds the database with a small sample catalogue and delivery landmarks.
// Run with: go run scripts/seed_sample_data.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"green-basket/internal/config"
	"green-basket/internal/database"
	"green-basket/internal/model"
	"green-basket/internal/repository"
	"green-basket/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	productRepo := repository.NewProductRepository(pool, logger)
	landmarkRepo := repository.NewLandmarkRepository(pool, logger)
	productService := service.NewProductService(productRepo, logger)
	landmarkService := service.NewLandmarkService(landmarkRepo, logger)

	products := []model.ProductRequest{
		{
			Name:        "Fresh Tomatoes",
			Description: "Ripe and juicy tomatoes, perfect for salads and cooking",
			Price:       decimal.RequireFromString("2.99"),
			ImageURL:    "https://images.unsplash.com/photo-1463123081488-789f998ac9c4",
			MinOrder:    5,
			InStock:     true,
		},
		{
			Name:        "Red Onions",
			Description: "Sweet and flavorful red onions",
			Price:       decimal.RequireFromString("1.99"),
			ImageURL:    "https://images.unsplash.com/photo-1516594798947-e65505dbb29d",
			MinOrder:    3,
			InStock:     true,
		},
		{
			Name:        "Bell Peppers",
			Description: "Colorful and crisp bell peppers",
			Price:       decimal.RequireFromString("3.99"),
			ImageURL:    "https://images.unsplash.com/photo-1489450278009-822e9be04dff",
			MinOrder:    2,
			InStock:     true,
		},
	}

	landmarks := []model.LandmarkRequest{
		{Name: "Downtown", DeliveryFee: decimal.RequireFromString("5.00")},
		{Name: "Suburb Area", DeliveryFee: decimal.RequireFromString("7.50")},
		{Name: "Business District", DeliveryFee: decimal.RequireFromString("6.00")},
	}

	for i := range products {
		if _, err := productService.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", products[i].Name, err)
		}
	}

	for i := range landmarks {
		if _, err := landmarkService.Create(ctx, &landmarks[i]); err != nil {
			return fmt.Errorf("failed to seed landmark %q: %w", landmarks[i].Name, err)
		}
	}

	logger.Info().
		Int("products", len(products)).
		Int("landmarks", len(landmarks)).
		Msg("sample data seeded")

	return nil
}
