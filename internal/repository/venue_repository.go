package repository

import (
	"context"
	"database/sql"
	"errors"

	"venue-booking/internal/model"
)

// VenueID is the id of the only venue row. Provisioning creates
// exactly one venue and every lookup goes through this constant.
const VenueID uint64 = 1

// ErrVenueNotFound is returned when the venue row is absent.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepo provides access to the singleton venue record.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Get retrieves the venue row.
func (r *VenueRepo) Get(ctx context.Context) (model.Venue, error) {
	const q = `SELECT id, name, address, capacity, sold_out, created_at, updated_at
	           FROM venues WHERE id = ?`
	var v model.Venue
	err := r.db.QueryRowContext(ctx, q, VenueID).
		Scan(&v.ID, &v.Name, &v.Address, &v.Capacity, &v.SoldOut, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Venue{}, ErrVenueNotFound
		}
		return model.Venue{}, err
	}
	return v, nil
}

// SetSoldOut persists the cached sold-out flag.
func (r *VenueRepo) SetSoldOut(ctx context.Context, soldOut bool) error {
	const q = `UPDATE venues SET sold_out = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, soldOut, VenueID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, VenueID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return err
		}
	}
	return nil
}

// Count returns the number of venue rows. Used by the seeder.
func (r *VenueRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&n)
	return n, err
}

// Create inserts the venue row. Only the seeder uses this.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (id, name, address, capacity, sold_out) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, VenueID, v.Name, v.Address, v.Capacity, v.SoldOut)
	if err != nil {
		return err
	}
	v.ID = VenueID
	return nil
}
