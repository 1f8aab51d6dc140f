package repository // repository defines data access for seats, users, bookings and the venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"venue-booking/internal/model"
)

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// SeatRepo provides methods to work with seats in the database.
// Seats are pre-provisioned rows; the repo never inserts outside the
// seeder, it only reads and flips the booked flag.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// GetByID retrieves a seat by its id.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (model.Seat, error) {
	const q = `SELECT id, venue_area, enabled, booked, created_at, updated_at
	           FROM seats WHERE id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.VenueArea, &s.Enabled, &s.Booked, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Seat{}, ErrSeatNotFound
		}
		return model.Seat{}, err
	}
	return s, nil
}

// ListAll returns every seat in store scan order.
func (r *SeatRepo) ListAll(ctx context.Context) ([]model.Seat, error) {
	const q = `SELECT id, venue_area, enabled, booked, created_at, updated_at FROM seats`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.VenueArea, &s.Enabled, &s.Booked, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SetBooked persists the seat's booked flag. Returns ErrSeatNotFound
// when no seat with the given id exists.
func (r *SeatRepo) SetBooked(ctx context.Context, id uint64, booked bool) error {
	const q = `UPDATE seats SET booked = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, booked, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when the flag already held the target
		// value, so confirm the row is actually missing.
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM seats WHERE id = ?`, id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSeatNotFound
			}
			return err
		}
	}
	return nil
}

// Count returns the number of seat rows. Used by the seeder.
func (r *SeatRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seats`).Scan(&n)
	return n, err
}

// CreateBulk inserts multiple seats in a single statement. Only the
// seeder uses this; seats are never created through the booking flow.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	// The venue_area column is a plain VARCHAR; the enum is enforced here.
	for _, s := range seats {
		if !s.VenueArea.Valid() {
			return fmt.Errorf("unknown venue area %q", s.VenueArea)
		}
	}
	query := `INSERT INTO seats (venue_area, enabled, booked) VALUES `
	args := make([]interface{}, 0, len(seats)*3)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, s.VenueArea, s.Enabled, s.Booked)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
