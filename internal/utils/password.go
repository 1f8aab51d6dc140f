package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash of plain at the given cost. The
// cost comes from configuration so tests can run at bcrypt.MinCost
// while production uses a slower setting.
func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	return string(hash), err
}

// VerifyPassword reports whether plain matches the stored bcrypt
// hash. It never says why a mismatch happened; login handlers return
// the same answer for a wrong password and a garbled hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
