package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := dsn("booking", "s3cret", "db", "3306", "venue")
	assert.Equal(t, "booking:s3cret@tcp(db:3306)/venue?charset=utf8mb4&parseTime=true&loc=UTC", got)
}

func TestDSN_NoPassword(t *testing.T) {
	// An empty password must not leave a dangling colon in the
	// credentials part.
	got := dsn("booking", "", "localhost", "3306", "venue")
	assert.Equal(t, "booking@tcp(localhost:3306)/venue?charset=utf8mb4&parseTime=true&loc=UTC", got)
}
