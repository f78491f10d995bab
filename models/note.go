package models

import "time"

// Note is a short text record owned by a user.
type Note struct {
	// ID is the unique identifier of the note (UUIDv7 string).
	ID string `json:"id"`

	// UserID is the owner of the note. It is taken from the request identity,
	// never from the request body.
	UserID string `json:"-"`

	// Title is a short caption, at most 255 characters.
	Title string `json:"title"`

	// Body is the note text.
	Body string `json:"body"`

	// CreatedAt is the timestamp when the note was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
