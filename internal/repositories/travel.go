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

// TravelReadRepository handles read operations over live travels
type TravelReadRepository struct {
	db *sqlx.DB
}

func NewTravelReadRepository(db *sqlx.DB) *TravelReadRepository {
	return &TravelReadRepository{db: db}
}

const travelColumns = `id, name, description, town, owner_id, activities, public`

// GetPublicByID returns the travel only when it is public; nil otherwise.
func (r *TravelReadRepository) GetPublicByID(ctx context.Context, id int64) (*models.TravelDB, error) {
	const query = `
		SELECT ` + travelColumns + `
		FROM travels
		WHERE id = $1 AND public
		LIMIT 1
	`

	var travel models.TravelDB
	err := r.db.GetContext(ctx, &travel, query, id)

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

// GetByIDForOwner returns the travel regardless of its public flag, but only
// when it belongs to the given owner; nil otherwise.
func (r *TravelReadRepository) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*models.TravelDB, error) {
	const query = `
		SELECT ` + travelColumns + `
		FROM travels
		WHERE id = $1 AND owner_id = $2
		LIMIT 1
	`

	var travel models.TravelDB
	err := r.db.GetContext(ctx, &travel, query, id, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, ownerID},
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

// ListPublicByOwner returns the owner's approved public travels.
func (r *TravelReadRepository) ListPublicByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error) {
	const query = `
		SELECT ` + travelColumns + `
		FROM travels
		WHERE owner_id = $1 AND public
		ORDER BY id
	`
	return r.list(ctx, query, ownerID)
}

// ListPrivateByOwner returns the owner's private travels.
func (r *TravelReadRepository) ListPrivateByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error) {
	const query = `
		SELECT ` + travelColumns + `
		FROM travels
		WHERE owner_id = $1 AND NOT public
		ORDER BY id
	`
	return r.list(ctx, query, ownerID)
}

// Recommendations returns up to ten public travels, optionally narrowed to a town.
func (r *TravelReadRepository) Recommendations(ctx context.Context, town *int64) ([]models.TravelDB, error) {
	const query = `
		SELECT ` + travelColumns + `
		FROM travels
		WHERE public AND ($1::BIGINT IS NULL OR town = $1)
		LIMIT 10
	`
	return r.list(ctx, query, town)
}

func (r *TravelReadRepository) list(ctx context.Context, query string, args ...any) ([]models.TravelDB, error) {
	var travels []models.TravelDB
	err := r.db.SelectContext(ctx, &travels, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(travels),
		"error", err,
	)

	return travels, err
}

// TravelWriteRepository handles write operations over live travels
type TravelWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTravelWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TravelWriteRepository {
	return &TravelWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a live travel row and returns its generated id. It
// participates in the surrounding transaction when one is present in the
// context, which is how an approved submission moves out of the moderation
// queue atomically.
func (r *TravelWriteRepository) Save(ctx context.Context, draft models.TravelDraft, public bool) (int64, error) {
	const query = `
		INSERT INTO travels (name, description, town, owner_id, activities, public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query,
		draft.Name, draft.Description, draft.Town, draft.OwnerID,
		pq.Int64Array(draft.Activities), public)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{draft.Name, draft.Town, draft.OwnerID, draft.Activities, public},
		"result", id,
		"error", err,
	)

	return id, err
}
