package entity

import (
	"time"
)

// Category is a closed classification for expenses, seeded once by the
// schema migrations and read-only afterwards.
type Category struct {
	ID        int
	Name      string
	Slug      string
	CreatedAt time.Time
}
