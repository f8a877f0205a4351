package service

import (
	"context"
	"encoding/json"
	"testing"

	"gameshelf/backend/internal/api/models"
	"gameshelf/backend/internal/api/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newUserService(t *testing.T) UserService {
	t.Helper()
	return NewUserService(repository.NewUserRepository(newTestDB(t)), testSecret)
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	}
}

func TestUserServiceRegister(t *testing.T) {
	svc := newUserService(t)

	profile, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, "ada@example.com", profile.Email)

	// The serialized profile must never carry a password-derived field.
	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "correct horse")
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestUserServiceLogin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	profile, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	result, err := svc.Login(ctx, &models.LoginRequest{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, result.User.ID)
	assert.Equal(t, "ada@example.com", result.User.Email)

	// The token is a valid HS256 JWT carrying the user id.
	token, err := jwt.Parse(result.Token, func(*jwt.Token) (any, error) { return testSecret, nil })
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, profile.ID, claims["sub"])

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestUserServiceLoginRejects(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{name: "wrong password", req: models.LoginRequest{Email: "ada@example.com", Password: "battery staple"}},
		{name: "unknown email", req: models.LoginRequest{Email: "nobody@example.com", Password: "correct horse"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestUserServiceList(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	_, err = svc.Register(ctx, &models.RegisterRequest{Name: "Grace", Email: "grace@example.com", Password: "battery staple"})
	require.NoError(t, err)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	raw, err := json.Marshal(users)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}
