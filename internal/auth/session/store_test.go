package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/domain"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client), mr
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	user := domain.User{Email: "hr@example.com", Name: "HR", Role: domain.RoleHR}

	t.Run("create and get round-trip the typed user", func(t *testing.T) {
		store, _ := setupStore(t)

		token, err := store.Create(ctx, user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		got, err := store.Get(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user, *got)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		store, _ := setupStore(t)

		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("delete ends the session", func(t *testing.T) {
		store, _ := setupStore(t)

		token, err := store.Create(ctx, user)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, token))
		_, err = store.Get(ctx, token)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("deleting an unknown token is not an error", func(t *testing.T) {
		store, _ := setupStore(t)
		assert.NoError(t, store.Delete(ctx, "nope"))
	})

	t.Run("sessions expire after the TTL", func(t *testing.T) {
		store, mr := setupStore(t)

		token, err := store.Create(ctx, user)
		require.NoError(t, err)

		mr.FastForward(sessionTTL + time.Minute)

		_, err = store.Get(ctx, token)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}
