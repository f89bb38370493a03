// Package pgtest starts a disposable PostgreSQL for integration tests and
// applies the embedded migrations to it.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgresadapter "canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated PostgreSQL container with an open GORM handle.
type Database struct {
	DB        *gorm.DB
	DSN       string
	container *postgres.PostgresContainer
}

// Start runs postgres:15-alpine and migrates it up, seed menu included.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	if err := migrations.Up(dsn); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := postgresadapter.Open(dsn, postgresadapter.DefaultPoolConfig())
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{DB: db, DSN: dsn, container: container}, nil
}

// Reset empties the ledger tables and restores the seeded menu.
func (d *Database) Reset(ctx context.Context) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE TABLE feedback, order_items, orders, menu_items RESTART IDENTITY CASCADE").Error; err != nil {
			return err
		}
		return tx.Exec(`
			INSERT INTO menu_items (name, price, stock, category, description) VALUES
				('Veg Burger', 50.00, 100, 'Snacks', 'Crispy veg patty with fresh veggies'),
				('Margherita Pizza', 120.00, 50, 'Main Course', 'Classic cheese and tomato pizza'),
				('Cold Coffee', 40.00, 80, 'Beverages', 'Chilled coffee with chocolate topping'),
				('French Fries', 60.00, 150, 'Snacks', 'Salted crispy fries')
		`).Error
	})
}

// Terminate closes the connection pool and removes the container.
func (d *Database) Terminate(ctx context.Context) error {
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return d.container.Terminate(ctx)
}
