package database

import (
	"context"
	"database/sql"
)

// Schema DDL. The unique index on bookings.seat_id is what makes two
// concurrent bookings for the same seat impossible at the storage
// level; the service translates the resulting duplicate-key error.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id          BIGINT UNSIGNED NOT NULL,
		name        VARCHAR(255) NOT NULL,
		address     VARCHAR(255) NOT NULL,
		capacity    INT NOT NULL,
		sold_out    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		first_name    VARCHAR(100) NOT NULL,
		last_name     VARCHAR(100) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS seats (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		venue_area  VARCHAR(20) NOT NULL,
		enabled     BOOLEAN NOT NULL DEFAULT TRUE,
		booked      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		show_id     BIGINT UNSIGNED NOT NULL,
		user_id     BIGINT UNSIGNED NOT NULL,
		seat_id     BIGINT UNSIGNED NOT NULL,
		created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_bookings_seat (seat_id),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT fk_bookings_seat FOREIGN KEY (seat_id) REFERENCES seats (id)
	) ENGINE=InnoDB`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
