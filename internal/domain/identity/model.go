package identity

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the users table. The password hash never serializes, so
// every response built from this struct is safe to return as-is.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"full_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest is the POST /auth/register payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse pairs a signed token with the public user record.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
