package service

import (
	"context"

	"venue-booking/internal/model"
	"venue-booking/internal/utils"
)

// UserService covers user CRUD with email uniqueness. Passwords are
// bcrypt-hashed before they ever reach the store.
type UserService struct {
	users UserStore
	cost  int // bcrypt cost
}

// NewUserService constructs a UserService with the given bcrypt cost.
func NewUserService(users UserStore, bcryptCost int) *UserService {
	return &UserService{users: users, cost: bcryptCost}
}

// CreateUserRequest carries the fields accepted at registration.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UpdateUserRequest carries optional overrides. Empty fields are left
// untouched; email is immutable and therefore not accepted at all.
type UpdateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// Create registers a new user. A user with the same email yields the
// store's ErrEmailExists; the password is hashed before persisting.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (model.User, error) {
	hash, err := utils.HashPassword(req.Password, s.cost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Update applies non-empty overrides for first name, last name and
// password. Returns the store's ErrUserNotFound for an unknown id.
func (s *UserService) Update(ctx context.Context, id uint64, req UpdateUserRequest) (model.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if req.FirstName != "" {
		existing.FirstName = req.FirstName
	}
	if req.LastName != "" {
		existing.LastName = req.LastName
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password, s.cost)
		if err != nil {
			return model.User{}, err
		}
		existing.PasswordHash = hash
	}
	if err := s.users.Update(ctx, existing); err != nil {
		return model.User{}, err
	}
	return existing, nil
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, id uint64) (model.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByEmail fetches a user by exact email match.
func (s *UserService) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// Delete removes a user; the store cascades the user's bookings.
func (s *UserService) Delete(ctx context.Context, id uint64) error {
	return s.users.Delete(ctx, id)
}

// VerifyPassword checks a login attempt against the stored hash.
func (s *UserService) VerifyPassword(u model.User, plain string) bool {
	return utils.VerifyPassword(u.PasswordHash, plain)
}
