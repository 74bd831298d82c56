package domain

import "time"

// ResetCode is a short-lived token mailed to a user so they can set a new
// password without knowing the old one. Validity is governed purely by the
// row's age; there is no consumed flag.
type ResetCode struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Code      string    `db:"code" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
