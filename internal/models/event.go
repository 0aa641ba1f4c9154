package models

// Moderation event actions published to Kafka.
const (
	ModerationSubmitted = "submitted"
	ModerationApproved  = "approved"
	ModerationRejected  = "rejected"
)

// ModerationEvent records a moderation-queue state change for the audit topic.
type ModerationEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Action    string `json:"action"`    // One of the Moderation* constants
	TravelID  int64  `json:"travel_id"` // The travel the decision concerns
	OwnerID   int64  `json:"owner_id"`  // Submitting user, when known
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds) of the decision
}
