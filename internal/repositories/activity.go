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

// ActivityReadRepository handles activity read operations
type ActivityReadRepository struct {
	db *sqlx.DB
}

func NewActivityReadRepository(db *sqlx.DB) *ActivityReadRepository {
	return &ActivityReadRepository{db: db}
}

// GetByID returns the activity with the given id, or nil when no such
// activity exists.
func (r *ActivityReadRepository) GetByID(ctx context.Context, id int64) (*models.ActivityDB, error) {
	const query = `
		SELECT id, town, name, description, coordinates, image
		FROM activities
		WHERE id = $1
		LIMIT 1
	`

	var activity models.ActivityDB
	err := r.db.GetContext(ctx, &activity, query, id)

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

	return &activity, nil
}

// ListByIDs resolves a travel's activity id sequence, preserving the stored
// order. Missing ids are skipped.
func (r *ActivityReadRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.ActivityDB, error) {
	activities := make([]models.ActivityDB, 0, len(ids))
	for _, id := range ids {
		activity, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if activity == nil {
			continue
		}
		activities = append(activities, *activity)
	}
	return activities, nil
}

// ListByTown returns all activities belonging to a town.
func (r *ActivityReadRepository) ListByTown(ctx context.Context, town int64) ([]models.ActivityDB, error) {
	const query = `
		SELECT id, town, name, description, coordinates, image
		FROM activities
		WHERE town = $1
		ORDER BY id
	`

	var activities []models.ActivityDB
	err := r.db.SelectContext(ctx, &activities, query, town)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{town},
		"result", len(activities),
		"error", err,
	)

	return activities, err
}

// MissingIDs returns the subset of ids that do not exist in the activities
// table. Used to validate submitted itineraries before insert.
func (r *ActivityReadRepository) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	const query = `SELECT id FROM activities WHERE id = ANY($1)`

	var found []int64
	err := r.db.SelectContext(ctx, &found, query, pq.Int64Array(ids))

	logger.Log.Infow(
		"query", query,
		"args", []any{ids},
		"result", len(found),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	known := make(map[int64]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// ActivityWriteRepository handles activity write operations
type ActivityWriteRepository struct {
	db *sqlx.DB
}

func NewActivityWriteRepository(db *sqlx.DB) *ActivityWriteRepository {
	return &ActivityWriteRepository{db: db}
}

// Save inserts a new activity and returns its generated id.
func (r *ActivityWriteRepository) Save(ctx context.Context, town int64, name, description, coordinates string) (int64, error) {
	const query = `
		INSERT INTO activities (town, name, description, coordinates)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, town, name, description, coordinates)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{town, name, coordinates},
		"result", id,
		"error", err,
	)

	return id, err
}

// SetImage records the stored image reference for an activity.
func (r *ActivityWriteRepository) SetImage(ctx context.Context, id int64, image string) error {
	const query = `UPDATE activities SET image = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, image, id)

	logger.Log.Infow(
		"query", query,
		"args", []any{image, id},
		"error", err,
	)

	return err
}
