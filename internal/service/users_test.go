package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/db/dbtest"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/service"
)

func newUsers(t *testing.T) (*service.Users, *auth.TokenManager) {
	t.Helper()

	cfg := &config.Config{JWTSecret: "secret", JWTTTL: time.Minute, BcryptCost: 4}
	tokens := auth.NewTokenManager(cfg)
	gdb := dbtest.New(t)
	return service.NewUsers(db.NewUserRepository(gdb), tokens, cfg, zap.NewNop().Sugar()), tokens
}

func TestUsersRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s, tokens := newUsers(t)

	token, err := s.Register(ctx, "me@example.com", "123456")
	require.NoError(t, err)
	userID, err := tokens.Parse(token)
	require.NoError(t, err)

	me, err := s.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", me.Email)
	assert.NotEqual(t, "123456", me.Password)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := s.Register(ctx, "me@example.com", "other")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		assert.Equal(t, service.KindConflict, service.KindOf(err))
	})

	t.Run("login", func(t *testing.T) {
		token, err := s.Login(ctx, "me@example.com", "123456")
		require.NoError(t, err)
		got, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(ctx, "me@example.com", "654321")
		assert.ErrorIs(t, err, service.ErrLoginPasswordDoesNotMatch)
		assert.Equal(t, service.KindInvalidCredentials, service.KindOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.Login(ctx, "nobody@example.com", "123456")
		assert.ErrorIs(t, err, service.ErrLoginUserNotFound)
		assert.Equal(t, service.KindInvalidCredentials, service.KindOf(err))
	})

	t.Run("login failures look alike", func(t *testing.T) {
		_, unknown := s.Login(ctx, "nobody@example.com", "123456")
		_, mismatch := s.Login(ctx, "me@example.com", "654321")
		require.Error(t, unknown)
		require.Error(t, mismatch)
		assert.Equal(t, unknown.Error(), mismatch.Error())
	})
}

func TestUsersEdit(t *testing.T) {
	ctx := context.Background()
	s, tokens := newUsers(t)

	token, err := s.Register(ctx, "me@example.com", "123456")
	require.NoError(t, err)
	userID, err := tokens.Parse(token)
	require.NoError(t, err)

	_, err = s.Register(ctx, "taken@example.com", "123456")
	require.NoError(t, err)

	first, last := "Akpofure", "Okegbe"
	got, err := s.Edit(ctx, userID, service.EditUser{FirstName: &first, LastName: &last})
	require.NoError(t, err)
	require.NotNil(t, got.FirstName)
	require.NotNil(t, got.LastName)
	assert.Equal(t, first, *got.FirstName)
	assert.Equal(t, last, *got.LastName)
	assert.Equal(t, "me@example.com", got.Email)

	taken := "taken@example.com"
	_, err = s.Edit(ctx, userID, service.EditUser{Email: &taken})
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	_, err = s.Me(ctx, 999)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
