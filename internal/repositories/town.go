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

// TownReadRepository handles town read operations
type TownReadRepository struct {
	db *sqlx.DB
}

func NewTownReadRepository(db *sqlx.DB) *TownReadRepository {
	return &TownReadRepository{db: db}
}

// List returns all towns.
func (r *TownReadRepository) List(ctx context.Context) ([]models.TownDB, error) {
	const query = `SELECT id, name, coordinates FROM towns ORDER BY id`

	var towns []models.TownDB
	err := r.db.SelectContext(ctx, &towns, query)

	logger.Log.Infow(
		"query", query,
		"result", len(towns),
		"error", err,
	)

	return towns, err
}

// GetByID returns the town with the given id, or nil when no such town exists.
func (r *TownReadRepository) GetByID(ctx context.Context, id int64) (*models.TownDB, error) {
	const query = `
		SELECT id, name, coordinates
		FROM towns
		WHERE id = $1
		LIMIT 1
	`

	var town models.TownDB
	err := r.db.GetContext(ctx, &town, query, id)

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

	return &town, nil
}

// TownWriteRepository handles town write operations
type TownWriteRepository struct {
	db *sqlx.DB
}

func NewTownWriteRepository(db *sqlx.DB) *TownWriteRepository {
	return &TownWriteRepository{db: db}
}

// Save inserts a new town.
func (r *TownWriteRepository) Save(ctx context.Context, name, coordinates string) error {
	const query = `INSERT INTO towns (name, coordinates) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, name, coordinates)

	logger.Log.Infow(
		"query", query,
		"args", []any{name, coordinates},
		"error", err,
	)

	return err
}
