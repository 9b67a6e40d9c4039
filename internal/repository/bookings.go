package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	domain "intake/internal/domain/bookings"
)

type bookingRow struct {
	ID      int64        `db:"id"`
	Name    string       `db:"name"`
	Email   string       `db:"email"`
	Service string       `db:"service"`
	Time    sql.NullTime `db:"time"`
}

type BookingsRepo struct {
	db *sqlx.DB
}

func NewBookingsRepo(db *sqlx.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

func (r *BookingsRepo) CreateBooking(ctx context.Context, booking domain.Booking) (int64, error) {
	var id int64

	query := `
		INSERT INTO bookings (
			name, email, service
		) VALUES (
			$1, $2, $3
		) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		booking.Name,
		booking.Email,
		booking.Service,
	).Scan(&id)

	if err != nil {
		return 0, &domain.StorageError{Op: "create booking", Err: err}
	}

	return id, nil
}

// ListRecentBookings returns at most limit bookings, newest first.
func (r *BookingsRepo) ListRecentBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}

	var rows []bookingRow

	query := `
		SELECT
			id, name, email, service, "time"
		FROM bookings
		ORDER BY "time" DESC, id DESC
		LIMIT $1`

	err := r.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, &domain.StorageError{Op: "list bookings", Err: err}
	}

	bookings := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, rowToDomain(row))
	}

	return bookings, nil
}

func rowToDomain(row bookingRow) domain.Booking {
	return domain.Booking{
		Id:      row.ID,
		Name:    row.Name,
		Email:   row.Email,
		Service: row.Service,
		Time:    row.Time.Time,
	}
}
