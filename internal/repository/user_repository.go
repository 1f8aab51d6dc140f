package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"venue-booking/internal/model"
)

// ErrUserNotFound is returned when a user lookup yields no rows.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when an insert collides with an existing email.
var ErrEmailExists = errors.New("email already exists")

// UserRepo provides methods to work with users in the database.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user. On success the generated id is populated on
// the given record. A duplicate email yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (first_name, last_name, email, password_hash) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, u.FirstName, u.LastName, u.Email, u.PasswordHash)
	if err != nil {
		// 1062 is the MySQL duplicate-entry error on the unique email index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	const q = `SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
	           FROM users WHERE id = ?`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// GetByEmail fetches a user by exact email match.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	const q = `SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
	           FROM users WHERE email = ? LIMIT 1`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// Update persists first name, last name and password hash. The email
// column is deliberately left out: it is immutable after creation.
func (r *UserRepo) Update(ctx context.Context, u model.User) error {
	const q = `UPDATE users SET first_name = ?, last_name = ?, password_hash = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, u.FirstName, u.LastName, u.PasswordHash, u.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, u.ID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUserNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a user. The bookings FK cascades, so the user's
// bookings disappear with the row.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM users WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Count returns the number of user rows. Used by the seeder.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
