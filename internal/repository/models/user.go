package models

import (
	"database/sql"
	"time"
)

// User represents a user in the system.
type User struct {
	ID        string         `db:"ID"`        // ULID
	GoogleID  string         `db:"GOOGLE_ID"` // Google's unique identifier for the user
	Email     string         `db:"EMAIL"`
	Name      sql.NullString `db:"NAME"`
	Image     sql.NullString `db:"IMAGE"` // profile picture URL
	CreatedAt time.Time      `db:"CREATED_AT"`
	UpdatedAt time.Time      `db:"UPDATED_AT"`
}
