package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func InitializeDBSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL,
	service VARCHAR(100) NOT NULL,
	"time" TIMESTAMP DEFAULT NOW()
);`)
	if err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}

	return nil
}
