package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// ModerationReadRepository handles reads over the moderation queue
type ModerationReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewModerationReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ModerationReadRepository {
	return &ModerationReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the queued submission with the given id, or nil when it
// has already been decided. Participates in a context transaction so that
// the approve read and the subsequent move see the same state.
func (r *ModerationReadRepository) GetByID(ctx context.Context, id int64) (*models.TravelDB, error) {
	const query = `
		SELECT id, name, description, town, owner_id, activities, public
		FROM moderated_travels
		WHERE id = $1
		LIMIT 1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var travel models.TravelDB
	err := sqlx.GetContext(ctx, executor, &travel, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &travel, nil
}

// ListAll returns the whole moderation queue for the admin page.
func (r *ModerationReadRepository) ListAll(ctx context.Context) ([]models.TravelDB, error) {
	const query = `
		SELECT id, name, description, town, owner_id, activities, public
		FROM moderated_travels
		ORDER BY id
	`

	var travels []models.TravelDB
	err := r.db.SelectContext(ctx, &travels, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(travels),
		"error", err,
	)

	return travels, err
}

// ListByOwner returns a user's still-pending submissions for the profile page.
func (r *ModerationReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error) {
	const query = `
		SELECT id, name, description, town, owner_id, activities, public
		FROM moderated_travels
		WHERE owner_id = $1
		ORDER BY id
	`

	var travels []models.TravelDB
	err := r.db.SelectContext(ctx, &travels, query, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", len(travels),
		"error", err,
	)

	return travels, err
}

// ModerationWriteRepository handles writes to the moderation queue
type ModerationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewModerationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ModerationWriteRepository {
	return &ModerationWriteRepository{db: db, txGetter: txGetter}
}

// Save enqueues a public submission for moderation and returns its queue id.
func (r *ModerationWriteRepository) Save(ctx context.Context, draft models.TravelDraft) (int64, error) {
	const query = `
		INSERT INTO moderated_travels (name, description, town, owner_id, activities, public)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		draft.Name, draft.Description, draft.Town, draft.OwnerID,
		pq.Int64Array(draft.Activities))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{draft.Name, draft.Town, draft.OwnerID, draft.Activities},
		"result", id,
		"error", err,
	)

	return id, err
}

// DeleteByID removes a queued submission. Deleting an already-decided id is
// not an error. Participates in a context transaction during approval.
func (r *ModerationWriteRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM moderated_travels WHERE id = $1`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, id)

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"error", err,
	)

	return err
}
