package service

import (
	"context"
	"testing"
	"time"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository/memory"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-do-not-use-in-production"

func newAuthService() AuthService {
	return NewAuthService(memory.NewUserRepository(), testJWTSecret, time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new user", func(t *testing.T) {
		svc := newAuthService()

		user, err := svc.Register(ctx, "john@example.com", "password123", domain.RoleClient)
		require.NoError(t, err)

		assert.True(t, user.IsActive)
		assert.Equal(t, domain.RoleClient, user.Role)
		assert.Empty(t, user.PasswordHash)
		assert.True(t, len(user.ID) > 3 && user.ID[:3] == "USR")
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc := newAuthService()

		_, err := svc.Register(ctx, "john@example.com", "password123", domain.RoleClient)
		require.NoError(t, err)

		_, err = svc.Register(ctx, "john@example.com", "different456", domain.RoleTrainer)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		svc := newAuthService()

		_, err := svc.Register(ctx, "", "password123", domain.RoleClient)
		assert.Error(t, err)
		_, err = svc.Register(ctx, "john@example.com", "", domain.RoleClient)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a valid token", func(t *testing.T) {
		svc := newAuthService()
		registered, err := svc.Register(ctx, "jane@example.com", "password123", domain.RoleTrainer)
		require.NoError(t, err)

		token, user, err := svc.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.Empty(t, user.PasswordHash)

		claims := &jwtClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, domain.RoleTrainer, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newAuthService()
		_, err := svc.Register(ctx, "jane@example.com", "password123", domain.RoleTrainer)
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "jane@example.com", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := newAuthService()

		_, _, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}
