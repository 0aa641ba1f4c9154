package models

// ActivityDB represents an activity row in the database
type ActivityDB struct {
	ID          int64   `json:"id" db:"id"`                   // Primary key
	Town        int64   `json:"town" db:"town"`               // Town the activity belongs to
	Name        string  `json:"name" db:"name"`               // Activity name
	Description string  `json:"description" db:"description"` // Free-form description
	Coordinates string  `json:"coordinates" db:"coordinates"` // "lat, lon" pair stored as text
	Image       *string `json:"image,omitempty" db:"image"`   // Optional stored image reference
}
