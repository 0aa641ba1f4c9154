package models

// SessionDB represents a session row in the database
type SessionDB struct {
	ID     int64  `json:"id" db:"id"`           // Primary key
	UserID int64  `json:"user_id" db:"user_id"` // Owner of the session
	Token  string `json:"token" db:"token"`     // Opaque, unguessable token carried by the cookie
}

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "session"
