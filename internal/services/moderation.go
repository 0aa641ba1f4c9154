package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// Error variables
var (
	ErrEmptyItinerary  = errors.New("travel has no activities")
	ErrUnknownActivity = errors.New("unknown activity id")
)

// ModerationReader defines reads over the moderation queue.
type ModerationReader interface {
	GetByID(ctx context.Context, id int64) (*models.TravelDB, error)
	ListAll(ctx context.Context) ([]models.TravelDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error)
}

// ModerationWriter defines writes to the moderation queue.
type ModerationWriter interface {
	Save(ctx context.Context, draft models.TravelDraft) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

// TravelWriter defines writes to the live travel table.
type TravelWriter interface {
	Save(ctx context.Context, draft models.TravelDraft, public bool) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ModerationService owns the submission state machine: a travel is Private,
// PendingModeration or Public, and the only path to Public is Approve.
type ModerationService struct {
	queue       ModerationReader
	queueWriter ModerationWriter
	travels     TravelWriter
	activities  ActivityReader
	kafkaWriter KafkaWriter
}

// NewModerationService creates a new ModerationService. kafkaWriter may be
// nil when no broker is configured.
func NewModerationService(
	queue ModerationReader,
	queueWriter ModerationWriter,
	travels TravelWriter,
	activities ActivityReader,
	kafkaWriter KafkaWriter,
) *ModerationService {
	return &ModerationService{
		queue:       queue,
		queueWriter: queueWriter,
		travels:     travels,
		activities:  activities,
		kafkaWriter: kafkaWriter,
	}
}

// Submit routes a validated draft to the moderation queue when it is meant
// to be public, or straight into the live table as a private travel.
func (svc *ModerationService) Submit(ctx context.Context, draft models.TravelDraft, isPublic bool) error {
	if len(draft.Activities) == 0 {
		return ErrEmptyItinerary
	}

	missing, err := svc.activities.MissingIDs(ctx, draft.Activities)
	if err != nil {
		logger.Log.Errorw("failed to validate activities", "err", err)
		return err
	}
	if len(missing) > 0 {
		logger.Log.Warnw("submission references unknown activities", "ids", missing)
		return ErrUnknownActivity
	}

	var id int64
	if isPublic {
		id, err = svc.queueWriter.Save(ctx, draft)
	} else {
		id, err = svc.travels.Save(ctx, draft, false)
	}
	if err != nil {
		logger.Log.Errorw("failed to save submission", "public", isPublic, "err", err)
		return err
	}

	if isPublic {
		svc.publishEvent(ctx, models.ModerationSubmitted, id, draft.OwnerID)
	}
	return nil
}

// Approve moves a queued submission into the live table with public=true.
// An absent id is a no-op, so a second admin click is safe. The insert and
// the queue delete must share one database transaction; the repositories
// pick it up from the context.
func (svc *ModerationService) Approve(ctx context.Context, id int64) error {
	queued, err := svc.queue.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read moderation queue", "id", id, "err", err)
		return err
	}
	if queued == nil {
		return nil
	}

	draft := models.TravelDraft{
		Name:        queued.Name,
		Description: queued.Description,
		Town:        queued.Town,
		OwnerID:     queued.OwnerID,
		Activities:  queued.Activities,
	}

	if _, err := svc.travels.Save(ctx, draft, true); err != nil {
		logger.Log.Errorw("failed to publish travel", "id", id, "err", err)
		return err
	}
	if err := svc.queueWriter.DeleteByID(ctx, id); err != nil {
		logger.Log.Errorw("failed to dequeue travel", "id", id, "err", err)
		return err
	}

	svc.publishEvent(ctx, models.ModerationApproved, id, queued.OwnerID)
	return nil
}

// Reject drops a queued submission unconditionally. Idempotent.
func (svc *ModerationService) Reject(ctx context.Context, id int64) error {
	if err := svc.queueWriter.DeleteByID(ctx, id); err != nil {
		logger.Log.Errorw("failed to reject travel", "id", id, "err", err)
		return err
	}
	svc.publishEvent(ctx, models.ModerationRejected, id, 0)
	return nil
}

// Queue returns the whole moderation queue.
func (svc *ModerationService) Queue(ctx context.Context) ([]models.TravelDB, error) {
	return svc.queue.ListAll(ctx)
}

// QueueEntry returns one queued submission, nil when already decided.
func (svc *ModerationService) QueueEntry(ctx context.Context, id int64) (*models.TravelDB, error) {
	return svc.queue.GetByID(ctx, id)
}

// PendingByOwner returns a user's still-pending submissions.
func (svc *ModerationService) PendingByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error) {
	return svc.queue.ListByOwner(ctx, ownerID)
}

// publishEvent publishes a moderation event to Kafka.
func (svc *ModerationService) publishEvent(ctx context.Context, action string, travelID, ownerID int64) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "action", action, "travel_id", travelID)
		return
	}

	event := models.ModerationEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		TravelID:  travelID,
		OwnerID:   ownerID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal moderation event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish moderation event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("moderation event published", "event_id", event.EventID, "action", action, "travel_id", travelID)
	}
}
