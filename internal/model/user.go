package model

import "time"

// User represents an application user as stored in the `users`
// table. Emails are unique by exact match. The password is kept
// only as a bcrypt hash. Deleting a user cascades deletion of the
// user's bookings at the database level.
//
// Fields:
//  ID           – primary key identifier.
//  FirstName    – given name.
//  LastName     – family name.
//  Email        – unique email address, immutable after creation.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	FirstName    string    // users.first_name
	LastName     string    // users.last_name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
