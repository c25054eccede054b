package domain

import "time"

// User is the domain model for a registered author identity. Only the
// bcrypt hash of the password is ever stored.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
