package models

import "time"

// Session is the server-side capability record backing an issued token.
// A session is valid only while its row exists and it is younger than
// the configured session TTL.
type Session struct {
	// SessionID is the unique identifier of the session row.
	SessionID string

	// UserID is the owner of the session.
	UserID string

	// Token is the random opaque session token embedded in the signed token.
	Token string

	// CreatedAt is the moment the session was issued.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// ExpiredAt reports whether the session is older than ttl at the moment now.
func (s Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return !now.Before(s.CreatedAt.Add(ttl))
}

// Identity is the authenticated caller attached to a request context
// after successful token verification.
type Identity struct {
	UserID string
	Token  string
}

// IsEmpty reports whether the identity carries no user or no session token.
func (i Identity) IsEmpty() bool {
	return i.UserID == "" || i.Token == ""
}

// IssuedToken is the signed bearer credential handed to the client.
type IssuedToken struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string

	// ExpiresAt mirrors the "exp" claim.
	ExpiresAt time.Time
}

// String returns the compact signed form of the token.
func (t IssuedToken) String() string {
	return t.SignedString
}
