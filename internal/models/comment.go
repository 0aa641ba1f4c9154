package models

// TravelCommentDB represents a comment attached to a travel
type TravelCommentDB struct {
	ID       int64  `json:"id" db:"id"`               // Primary key
	OwnerID  int64  `json:"owner_id" db:"owner_id"`   // Commenting user
	TravelID int64  `json:"travel_id" db:"travel_id"` // Travel the comment is attached to
	Title    string `json:"title" db:"title"`         // Short heading
	Pros     string `json:"pros" db:"pros"`           // What the commenter liked
	Cons     string `json:"cons" db:"cons"`           // What the commenter disliked
	Text     string `json:"text" db:"text"`           // Comment body
	Stars    *int64 `json:"stars,omitempty" db:"stars"` // Optional 1-5 rating
}

// ActivityCommentDB represents a comment attached to an activity
type ActivityCommentDB struct {
	ID         int64  `json:"id" db:"id"`                   // Primary key
	OwnerID    int64  `json:"owner_id" db:"owner_id"`       // Commenting user
	ActivityID int64  `json:"activity_id" db:"activity_id"` // Activity the comment is attached to
	Title      string `json:"title" db:"title"`             // Short heading
	Pros       string `json:"pros" db:"pros"`               // What the commenter liked
	Cons       string `json:"cons" db:"cons"`               // What the commenter disliked
	Text       string `json:"text" db:"text"`               // Comment body
	Stars      *int64 `json:"stars,omitempty" db:"stars"`   // Optional 1-5 rating
}
