package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"venue-booking/internal/repository"
	"venue-booking/internal/service"
)

func TestCreateUser(t *testing.T) {
	store := newFakeUserStore()
	svc := service.NewUserService(store, bcrypt.MinCost)
	ctx := context.Background()

	u, err := svc.Create(ctx, service.CreateUserRequest{
		FirstName: "Ana",
		LastName:  "Almeida",
		Email:     "a@x.com",
		Password:  "secret",
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "secret", u.PasswordHash, "password is stored hashed")
	assert.True(t, svc.VerifyPassword(u, "secret"))
	assert.False(t, svc.VerifyPassword(u, "wrong"))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := service.NewUserService(store, bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.CreateUserRequest{Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, service.CreateUserRequest{Email: "a@x.com", Password: "p2"})
	assert.ErrorIs(t, err, repository.ErrEmailExists)
	assert.Len(t, store.users, 1, "no second row inserted")
}

func TestUpdateUser_AppliesNonEmptyOverrides(t *testing.T) {
	store := newFakeUserStore()
	svc := service.NewUserService(store, bcrypt.MinCost)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateUserRequest{
		FirstName: "Ana", LastName: "Almeida", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, service.UpdateUserRequest{FirstName: "Anabela"})
	require.NoError(t, err)
	assert.Equal(t, "Anabela", updated.FirstName)
	assert.Equal(t, "Almeida", updated.LastName, "empty override leaves the field alone")
	assert.Equal(t, "a@x.com", updated.Email, "email is immutable")
	assert.True(t, svc.VerifyPassword(updated, "secret"), "password untouched without override")

	updated, err = svc.Update(ctx, created.ID, service.UpdateUserRequest{Password: "rotated"})
	require.NoError(t, err)
	assert.True(t, svc.VerifyPassword(updated, "rotated"))
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := service.NewUserService(newFakeUserStore(), bcrypt.MinCost)

	_, err := svc.Update(context.Background(), 42, service.UpdateUserRequest{FirstName: "X"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc := service.NewUserService(newFakeUserStore(), bcrypt.MinCost)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestGetUserByEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := service.NewUserService(store, bcrypt.MinCost)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateUserRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	got, err := svc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
