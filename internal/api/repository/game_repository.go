package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gameshelf/backend/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("repository.games")

// GameRepository defines the interface for game data operations.
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	List(ctx context.Context) ([]models.Game, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Game, error)
	GetByID(ctx context.Context, id string) (*models.Game, error)
	Update(ctx context.Context, game *models.Game) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type sqliteGameRepository struct {
	db *sqlx.DB
}

// NewGameRepository creates a new sqlite-based GameRepository.
func NewGameRepository(db *sqlx.DB) GameRepository {
	return &sqliteGameRepository{db: db}
}

// IsUniqueViolation reports whether err was caused by a unique
// constraint, such as two games sharing an (owner, title) pair.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a new game record.
func (r *sqliteGameRepository) Create(ctx context.Context, game *models.Game) error {
	ctx, span := tracer.Start(ctx, "GameRepository.Create")
	defer span.End()

	query := `INSERT INTO games
		(id, title, release_year, genre, description, platform, image, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		game.ID, game.Title, game.ReleaseYear, game.Genre, game.Description,
		game.Platform, game.Image, game.OwnerID, game.CreatedAt, game.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// List returns every game, newest first.
func (r *sqliteGameRepository) List(ctx context.Context) ([]models.Game, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.List")
	defer span.End()

	games := []models.Game{}
	query := `SELECT * FROM games ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &games, query); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// ListByOwner returns the games created by one user, newest first.
func (r *sqliteGameRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Game, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.ListByOwner")
	defer span.End()

	games := []models.Game{}
	query := `SELECT * FROM games WHERE owner_id = ? ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &games, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list games by owner: %w", err)
	}
	return games, nil
}

// GetByID retrieves one game. A missing record is (nil, nil), not an
// error.
func (r *sqliteGameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.GetByID")
	defer span.End()

	var game models.Game
	query := `SELECT * FROM games WHERE id = ?`
	if err := r.db.GetContext(ctx, &game, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}
	return &game, nil
}

// Update rewrites the mutable fields of a game record. It returns false
// when no record with that id exists.
func (r *sqliteGameRepository) Update(ctx context.Context, game *models.Game) (bool, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.Update")
	defer span.End()

	query := `UPDATE games
		SET title = ?, release_year = ?, genre = ?, description = ?, platform = ?, image = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		game.Title, game.ReleaseYear, game.Genre, game.Description,
		game.Platform, game.Image, game.UpdatedAt, game.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return false, err
		}
		return false, fmt.Errorf("failed to update game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a game record. It returns false when no record with
// that id exists.
func (r *sqliteGameRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.Delete")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}
