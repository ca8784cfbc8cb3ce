package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	UserID           string         `db:"id"`
	Email            string         `db:"email"`
	PasswordHash     string         `db:"password_hash"`
	DisplayName      string         `db:"display_name"`
	Role             string         `db:"role"`
	CountryCode      sql.NullString `db:"country_code"`
	NativeLanguageID sql.NullString `db:"native_language_id"`
	UILanguageID     sql.NullString `db:"ui_language_id"`
	RefreshTokens    []string       `db:"refresh_tokens"`
	LastActiveAt     *time.Time     `db:"last_active_at"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
