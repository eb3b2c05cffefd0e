package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	FullName     string         `db:"full_name" json:"full_name"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	PhoneNumber  sql.NullString `db:"phone_number" json:"phone_number"`
	// PendingOtp is only ever read by the verification compare; it is never
	// exposed over the API.
	PendingOtp            sql.NullString `db:"pending_otp" json:"-"`
	IsPhoneNumberVerified bool           `db:"is_phone_number_verified" json:"is_phone_number_verified"`
	IsProfileComplete     bool           `db:"is_profile_complete" json:"is_profile_complete"`
	JoinedOn              *time.Time     `db:"joined_on" json:"joined_on,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
