package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"green-basket/internal/database"
	"green-basket/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the
// migrated schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// Catalogue holds the identifiers of the seeded sample data.
type Catalogue struct {
	Tomatoes    model.Product
	Onions      model.Product
	BellPeppers model.Product
	Downtown    model.Landmark
	Suburb      model.Landmark
}

// SeedCatalogue inserts a small known catalogue and two landmarks.
func SeedCatalogue(t *testing.T, pool *pgxpool.Pool) Catalogue {
	t.Helper()

	ctx := context.Background()

	c := Catalogue{
		Tomatoes: model.Product{
			ID:       uuid.New(),
			Name:     "Fresh Tomatoes",
			Price:    decimal.RequireFromString("2.99"),
			MinOrder: 5,
			InStock:  true,
		},
		Onions: model.Product{
			ID:       uuid.New(),
			Name:     "Red Onions",
			Price:    decimal.RequireFromString("1.99"),
			MinOrder: 3,
			InStock:  true,
		},
		BellPeppers: model.Product{
			ID:       uuid.New(),
			Name:     "Bell Peppers",
			Price:    decimal.RequireFromString("3.99"),
			MinOrder: 2,
			InStock:  false,
		},
		Downtown: model.Landmark{
			ID:          uuid.New(),
			Name:        "Downtown",
			DeliveryFee: decimal.RequireFromString("5.00"),
		},
		Suburb: model.Landmark{
			ID:          uuid.New(),
			Name:        "Suburb Area",
			DeliveryFee: decimal.RequireFromString("7.50"),
		},
	}

	for _, p := range []model.Product{c.Tomatoes, c.Onions, c.BellPeppers} {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, price, min_order, in_stock) VALUES ($1, $2, $3, $4, $5)",
			p.ID, p.Name, p.Price, p.MinOrder, p.InStock,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.Name, err)
		}
	}

	for _, l := range []model.Landmark{c.Downtown, c.Suburb} {
		_, err := pool.Exec(ctx,
			"INSERT INTO landmarks (id, name, delivery_fee) VALUES ($1, $2, $3)",
			l.ID, l.Name, l.DeliveryFee,
		)
		if err != nil {
			t.Fatalf("failed to seed landmark %s: %v", l.Name, err)
		}
	}

	return c
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "cart_items", "landmarks", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
