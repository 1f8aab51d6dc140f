package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"venue-booking/internal/model"
)

// ErrBookingNotFound is returned when a booking lookup yields no rows.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSeatTaken is returned when an insert or update collides with the
// unique index on bookings.seat_id. The index is what stops two
// concurrent requests from booking the same seat: both can pass the
// availability check, but only one insert lands.
var ErrSeatTaken = errors.New("seat already referenced by a booking")

// BookingRepo provides CRUD operations for bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingCols = `id, show_id, user_id, seat_id, created_at, updated_at`

func scanBooking(row interface {
	Scan(dest ...interface{}) error
}) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.ShowID, &b.UserID, &b.SeatID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Create inserts a booking and populates its generated id and
// timestamps. A seat already referenced by another booking yields
// ErrSeatTaken.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (show_id, user_id, seat_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.ShowID, b.UserID, b.SeatID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrSeatTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	// Read the row back so timestamps reflect what the database stored.
	const sel = `SELECT ` + bookingCols + ` FROM bookings WHERE id = ?`
	stored, err := scanBooking(r.db.QueryRowContext(ctx, sel, b.ID))
	if err != nil {
		return err
	}
	*b = stored
	return nil
}

// GetByID retrieves a booking by its id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, ErrBookingNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

// ListAll returns every booking.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings`
	return r.list(ctx, q)
}

// ListByUser returns the user's bookings. A user with no bookings
// yields an empty slice, not an error.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE user_id = ?`
	return r.list(ctx, q, userID)
}

func (r *BookingRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateSeat repoints a booking at a different seat. A seat already
// referenced by another booking yields ErrSeatTaken.
func (r *BookingRepo) UpdateSeat(ctx context.Context, id, seatID uint64) error {
	const q = `UPDATE bookings SET seat_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, seatID, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrSeatTaken
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM bookings WHERE id = ?`, id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookingNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a booking by id.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM bookings WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Count returns the number of booking rows. Used by the seeder.
func (r *BookingRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}
