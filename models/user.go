package models

import "time"

// User represents an account entity used for authentication.
// The plaintext email is never persisted: only its keyed lookup index and
// its ciphertext are stored.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	UserID string `json:"-"`

	// EmailIndex is the deterministic keyed hash of the normalized email.
	// It is the uniqueness and lookup key for the account.
	EmailIndex string `json:"-"`

	// EncryptedEmail holds the hex-encoded IV and AES-CBC ciphertext of the email.
	EncryptedEmail string `json:"-"`

	// Salt is the per-user random salt mixed into the password hash.
	Salt string `json:"-"`

	// PasswordHash is the stretched password digest.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body accepted by the signup and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
