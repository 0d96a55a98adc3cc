package identity

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a profile. New registrations always start as "user";
// promotion to "admin" happens out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Profile struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     *string   `db:"full_name" json:"full_name,omitempty"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	Address      *string   `db:"address" json:"address,omitempty"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name,omitempty"`
}

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is returned from register and login: the signed token plus the
// profile it belongs to.
type Session struct {
	Token   string   `json:"token"`
	Profile *Profile `json:"profile"`
}

// ProfileUpdate carries the fields a profile owner may change about
// themselves. Email and role are deliberately absent.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}
