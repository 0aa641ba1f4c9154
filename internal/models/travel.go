package models

import "github.com/lib/pq"

// TravelDB represents a travel row, either live (travels) or awaiting
// moderation (moderated_travels). The two tables share this shape.
type TravelDB struct {
	ID          int64         `json:"id" db:"id"`                   // Primary key
	Name        string        `json:"name" db:"name"`               // Travel name
	Description string        `json:"description" db:"description"` // Free-form description
	Town        int64         `json:"town" db:"town"`               // Town the itinerary is for
	OwnerID     int64         `json:"owner_id" db:"owner_id"`       // Creating user
	Activities  pq.Int64Array `json:"activities" db:"activities"`   // Ordered activity ids
	Public      bool          `json:"public" db:"public"`           // Visible to everyone when true
}

// TravelDraft is a validated travel submission before it is routed to
// either the live table or the moderation queue.
type TravelDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Town        int64   `json:"town"`
	OwnerID     int64   `json:"owner_id"`
	Activities  []int64 `json:"activities"`
}
