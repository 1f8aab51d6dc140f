package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"venue-booking/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, utils.VerifyPassword(hash, "secret"))
	assert.False(t, utils.VerifyPassword(hash, "wrong"))
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := utils.HashPassword("secret", bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestVerifyPassword_GarbledHash(t *testing.T) {
	assert.False(t, utils.VerifyPassword("not-a-bcrypt-hash", "secret"))
}
