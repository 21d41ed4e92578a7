package entity

import "time"

// Preferences is an embedded document stored as JSONB on the users row.
type Preferences struct {
	Currency       string `json:"currency"`
	Language       string `json:"language"`
	Timezone       string `json:"timezone"`
	MarketingOptIn bool   `json:"marketingOptIn"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Currency: "CAD",
		Language: "en",
		Timezone: "EST",
	}
}

type User struct {
	Base
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	FirstName    *string     `db:"first_name"`
	LastName     *string     `db:"last_name"`
	Phone        *string     `db:"phone"`
	Preferences  Preferences `db:"preferences"`

	// Reset code state. Both fields are set together when a reset is
	// requested and cleared together when the code is consumed. A row with
	// only one of them populated is invalid (enforced by a CHECK constraint).
	ResetCodeHash      *string    `db:"reset_code_hash"`
	ResetCodeExpiresAt *time.Time `db:"reset_code_expires_at"`
}

// HasPendingReset reports whether an unexpired reset code is outstanding.
func (u *User) HasPendingReset(now time.Time) bool {
	return u.ResetCodeHash != nil &&
		u.ResetCodeExpiresAt != nil &&
		!u.ResetCodeExpiresAt.Before(now)
}
