package models

// UserDB represents a user row in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`      // Primary key
	Email        string `json:"email" db:"email"` // Unique email, used as the login
	Name         string `json:"name" db:"name"`   // Display name
	PasswordHash string `json:"-" db:"password"`  // bcrypt hash, never serialized
}

// User is the view of a user handed to handlers after session resolution.
// It intentionally carries no password hash.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public strips the password hash from a database row.
func (u *UserDB) Public() *User {
	return &User{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
