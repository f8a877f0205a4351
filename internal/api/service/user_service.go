package service

import (
	"context"
	"time"

	"gameshelf/backend/internal/api/models"
	"gameshelf/backend/internal/api/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines the interface for account business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	List(ctx context.Context) ([]models.UserProfile, error)
}

type userService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	now       func() time.Time
}

// NewUserService creates a new UserService. The JWT secret comes from
// configuration, not from a source literal.
func NewUserService(userRepo repository.UserRepository, jwtSecret []byte) UserService {
	return &userService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

// Register creates an account, rejecting duplicate emails. The returned
// profile carries no password-derived field.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user, req.Password); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// Login compares the supplied password against the stored hash and, on
// success, returns a signed token plus the non-sensitive profile. Any
// mismatch or unknown email answers the same way.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   s.now().Add(72 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: signed, User: user.Profile()}, nil
}

// List returns the non-sensitive projection of every user.
func (s *userService) List(ctx context.Context) ([]models.UserProfile, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]models.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}
