package service

import (
	"context"
	"time"

	"gameshelf/backend/internal/api/models"
	"gameshelf/backend/internal/api/repository"
	"gameshelf/backend/internal/validator"

	"github.com/google/uuid"
)

// GameService defines the interface for catalog business logic.
type GameService interface {
	Create(ctx context.Context, req *models.CreateGameRequest) (*models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Game, error)
	Get(ctx context.Context, id string) (*models.Game, error)
	Update(ctx context.Context, id string, req *models.UpdateGameRequest) (*models.Game, error)
	Delete(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo repository.GameRepository
	check    *validator.GameValidator
	now      func() time.Time
}

// NewGameService creates a new GameService.
func NewGameService(gameRepo repository.GameRepository, check *validator.GameValidator) GameService {
	return &gameService{
		gameRepo: gameRepo,
		check:    check,
		now:      time.Now,
	}
}

// Create validates the payload, persists a new record and returns it
// with its generated id and timestamps.
func (s *gameService) Create(ctx context.Context, req *models.CreateGameRequest) (*models.Game, error) {
	req.Normalize()
	if violations := s.check.Check(req); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	now := s.now().UTC()
	game := &models.Game{
		ID:          uuid.NewString(),
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		Description: req.Description,
		Platform:    models.StringList(req.Platform),
		Image:       req.Image,
		OwnerID:     req.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return game, nil
}

// List returns every game, newest first.
func (s *gameService) List(ctx context.Context) ([]models.Game, error) {
	return s.gameRepo.List(ctx)
}

// ListByOwner returns one user's games, newest first.
func (s *gameService) ListByOwner(ctx context.Context, ownerID string) ([]models.Game, error) {
	return s.gameRepo.ListByOwner(ctx, ownerID)
}

// Get retrieves one game by id.
func (s *gameService) Get(ctx context.Context, id string) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// Update applies a partial patch: only the supplied fields are validated
// and written; everything else keeps its stored value.
func (s *gameService) Update(ctx context.Context, id string, req *models.UpdateGameRequest) (*models.Game, error) {
	if req.Empty() {
		return nil, &ValidationError{Violations: []string{"at least one field must be provided for update"}}
	}
	req.Normalize()
	if violations := s.check.Check(req); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	req.Apply(game)
	game.UpdatedAt = s.now().UTC()

	updated, err := s.gameRepo.Update(ctx, game)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	if !updated {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// Delete removes one game by id.
func (s *gameService) Delete(ctx context.Context, id string) error {
	deleted, err := s.gameRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGameNotFound
	}
	return nil
}
