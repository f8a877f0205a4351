package repository

import (
	"context"
	"testing"
	"time"

	"gameshelf/backend/internal/api/models"
	"gameshelf/backend/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory database. The pool is pinned to a single
// connection before the schema runs, since every sqlite connection gets
// its own in-memory database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	pool, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)
	require.NoError(t, db.Initialize(pool))
	t.Cleanup(func() { pool.Close() })
	return pool
}

func sampleGame(title string, ownerID *string, createdAt time.Time) *models.Game {
	return &models.Game{
		ID:          uuid.NewString(),
		Title:       title,
		ReleaseYear: 2020,
		Genre:       "RPG",
		Description: "A long enough description.",
		Platform:    models.StringList{"PC", "Switch"},
		Image:       "https://example.com/cover.png",
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestGameRepositoryCreateAndGet(t *testing.T) {
	repo := NewGameRepository(newTestDB(t))
	ctx := context.Background()

	created := sampleGame("Zed", nil, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Zed", got.Title)
	assert.Equal(t, 2020, got.ReleaseYear)
	assert.Equal(t, "RPG", got.Genre)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, models.StringList{"PC", "Switch"}, got.Platform)
	assert.Equal(t, created.Image, got.Image)
	assert.Nil(t, got.OwnerID)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestGameRepositoryGetMissingIsNil(t *testing.T) {
	repo := NewGameRepository(newTestDB(t))

	got, err := repo.GetByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGameRepositoryDuplicateTitlePerOwner(t *testing.T) {
	repo := NewGameRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	owner := uuid.NewString()
	require.NoError(t, repo.Create(ctx, sampleGame("Zed", &owner, now)))

	err := repo.Create(ctx, sampleGame("Zed", &owner, now))
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	// A different owner may reuse the title.
	other := uuid.NewString()
	assert.NoError(t, repo.Create(ctx, sampleGame("Zed", &other, now)))

	// Ownerless records never collide with each other.
	assert.NoError(t, repo.Create(ctx, sampleGame("Quake", nil, now)))
	assert.NoError(t, repo.Create(ctx, sampleGame("Quake", nil, now)))
}

func TestGameRepositoryListNewestFirst(t *testing.T) {
	repo := NewGameRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, sampleGame("Oldest", nil, base)))
	require.NoError(t, repo.Create(ctx, sampleGame("Middle", nil, base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, sampleGame("Newest", nil, base.Add(2*time.Minute))))

	games, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "Newest", games[0].Title)
	assert.Equal(t, "Middle", games[1].Title)
	assert.Equal(t, "Oldest", games[2].Title)
}

func TestGameRepositoryListEmpty(t *testing.T) {
	repo := NewGameRepository(newTestDB(t))

	games, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}

func TestGameRepositoryListByOwner(t *testing.T) {
	repo := NewGameRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	owner := uuid.NewString()
	other := uuid.NewString()
	require.NoError(t, repo.Create(ctx, sampleGame("Mine", &owner, now)))
	require.NoError(t, repo.Create(ctx, sampleGame("Theirs", &other, now)))
	require.NoError(t, repo.Create(ctx, sampleGame("Nobody's", nil, now)))

	games, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Mine", games[0].Title)
}

func TestGameRepositoryUpdate(t *testing.T) {
	repo := NewGameRepository(newTestDB(t))
	ctx := context.Background()

	game := sampleGame("Zed", nil, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, game))

	game.Title = "Zed 2"
	game.UpdatedAt = game.UpdatedAt.Add(time.Minute)
	updated, err := repo.Update(ctx, game)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Zed 2", got.Title)

	missing := sampleGame("Ghost", nil, time.Now().UTC())
	updated, err = repo.Update(ctx, missing)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestGameRepositoryDelete(t *testing.T) {
	repo := NewGameRepository(newTestDB(t))
	ctx := context.Background()

	game := sampleGame("Zed", nil, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, game))

	deleted, err := repo.Delete(ctx, game.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.Delete(ctx, game.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
