package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gameshelf/backend/internal/api/models"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new sqlite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// Create hashes the password and inserts a new user. The plaintext
// password is never stored.
func (r *sqliteUserRepository) Create(ctx context.Context, user *models.User, password string) error {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	query := `INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email. A missing user is (nil, nil),
// not an error.
func (r *sqliteUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByEmail")
	defer span.End()

	var user models.User
	query := `SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// List returns every user. The password hash column is not selected.
func (r *sqliteUserRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.List")
	defer span.End()

	users := []models.User{}
	query := `SELECT id, name, email, created_at FROM users ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
