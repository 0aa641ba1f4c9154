package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// CommentReadRepository handles comment read operations
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByTravel returns all comments attached to a travel.
func (r *CommentReadRepository) ListByTravel(ctx context.Context, travelID int64) ([]models.TravelCommentDB, error) {
	const query = `
		SELECT id, owner_id, travel_id, title, pros, cons, text, stars
		FROM travel_comments
		WHERE travel_id = $1
		ORDER BY id
	`

	var comments []models.TravelCommentDB
	err := r.db.SelectContext(ctx, &comments, query, travelID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{travelID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}

// ListByActivity returns all comments attached to an activity.
func (r *CommentReadRepository) ListByActivity(ctx context.Context, activityID int64) ([]models.ActivityCommentDB, error) {
	const query = `
		SELECT id, owner_id, activity_id, title, pros, cons, text, stars
		FROM activity_comments
		WHERE activity_id = $1
		ORDER BY id
	`

	var comments []models.ActivityCommentDB
	err := r.db.SelectContext(ctx, &comments, query, activityID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{activityID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}

// CommentWriteRepository handles comment write operations
type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// SaveTravelComment attaches a comment to a travel.
func (r *CommentWriteRepository) SaveTravelComment(ctx context.Context, travelID, ownerID int64, title, pros, cons, text string, stars *int64) error {
	const query = `
		INSERT INTO travel_comments (travel_id, owner_id, title, pros, cons, text, stars)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query, travelID, ownerID, title, pros, cons, text, stars)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{travelID, ownerID, title},
		"error", err,
	)

	return err
}

// SaveActivityComment attaches a comment to an activity.
func (r *CommentWriteRepository) SaveActivityComment(ctx context.Context, activityID, ownerID int64, title, pros, cons, text string, stars *int64) error {
	const query = `
		INSERT INTO activity_comments (activity_id, owner_id, title, pros, cons, text, stars)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query, activityID, ownerID, title, pros, cons, text, stars)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{activityID, ownerID, title},
		"error", err,
	)

	return err
}
