package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// SessionReadRepository handles session read operations
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetByToken returns the session carrying the given token, or nil when the
// token is unknown. An unknown token is not an error: anonymous browsing
// resolves to no session.
func (r *SessionReadRepository) GetByToken(ctx context.Context, token string) (*models.SessionDB, error) {
	const query = `
		SELECT id, user_id, token
		FROM sessions
		WHERE token = $1
		LIMIT 1
	`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, token)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// SessionWriteRepository handles session write operations
type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save persists a new (token, user) pair.
func (r *SessionWriteRepository) Save(ctx context.Context, userID int64, token string) error {
	const query = `INSERT INTO sessions (user_id, token) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, userID, token)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}

// DeleteByToken removes the session carrying the given token. Deleting an
// unknown token is not an error.
func (r *SessionWriteRepository) DeleteByToken(ctx context.Context, token string) error {
	const query = `DELETE FROM sessions WHERE token = $1`

	_, err := r.db.ExecContext(ctx, query, token)

	logger.Log.Infow(
		"query", query,
		"error", err,
	)

	return err
}
