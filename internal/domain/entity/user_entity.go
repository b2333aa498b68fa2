package entity

import (
	"time"
)

// User is an account holder. Password holds the bcrypt hash, never the
// plaintext. Users are created at registration and never mutated or deleted
// by this service.
type User struct {
	ID        string
	Email     string
	Password  string
	FullName  string
	CreatedAt time.Time
}
