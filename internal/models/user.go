package models

import (
	"database/sql"
	"time"
)

// User represents a row in the users table.
// Position, State and City are nullable: State/City hold the denormalized
// location of the user's current employer, Position is free text.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Position     sql.NullString `db:"position"`
	State        sql.NullString `db:"state"`
	City         sql.NullString `db:"city"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
