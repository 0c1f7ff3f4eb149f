package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-employee-api/internal/auth"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()
	ttl := 24 * time.Hour

	t.Run("save stores the owner with ttl", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := auth.NewRedisSessionStore(client, ttl)
		id := uuid.New()

		mock.ExpectSet("auth:refresh:tok-1", id.String(), ttl).SetVal("OK")

		assert.NoError(t, store.Save(ctx, "tok-1", id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("consume reads and deletes", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := auth.NewRedisSessionStore(client, ttl)
		id := uuid.New()

		mock.ExpectGetDel("auth:refresh:tok-1").SetVal(id.String())

		got, err := store.Consume(ctx, "tok-1")
		assert.NoError(t, err)
		assert.Equal(t, id, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("consume of unknown token", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := auth.NewRedisSessionStore(client, ttl)

		mock.ExpectGetDel("auth:refresh:gone").RedisNil()

		_, err := store.Consume(ctx, "gone")
		assert.ErrorIs(t, err, auth.ErrSessionNotFound)
	})

	t.Run("consume of corrupt value", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := auth.NewRedisSessionStore(client, ttl)

		mock.ExpectGetDel("auth:refresh:bad").SetVal("not-a-uuid")

		_, err := store.Consume(ctx, "bad")
		assert.ErrorIs(t, err, auth.ErrSessionNotFound)
	})

	t.Run("consume surfaces redis errors", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := auth.NewRedisSessionStore(client, ttl)
		boom := errors.New("connection reset")

		mock.ExpectGetDel("auth:refresh:tok").SetErr(boom)

		_, err := store.Consume(ctx, "tok")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("revoke deletes the key", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := auth.NewRedisSessionStore(client, ttl)

		mock.ExpectDel("auth:refresh:tok-1").SetVal(1)

		assert.NoError(t, store.Revoke(ctx, "tok-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
