package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "auth:refresh:"

var ErrSessionNotFound = errors.New("refresh session not found")

//go:generate mockgen -source=auth_session_store.go -destination=mock/auth_session_store_mock.go -package=mock
type SessionStore interface {
	Save(ctx context.Context, refreshToken string, employeeID uuid.UUID) error
	// Consume returns the owner of refreshToken and deletes it in one step,
	// so a refresh token can be exchanged at most once.
	Consume(ctx context.Context, refreshToken string) (uuid.UUID, error)
	Revoke(ctx context.Context, refreshToken string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &redisSessionStore{client: client, ttl: ttl}
}

func refreshKey(token string) string {
	return refreshKeyPrefix + token
}

func (s *redisSessionStore) Save(ctx context.Context, refreshToken string, employeeID uuid.UUID) error {
	return s.client.Set(ctx, refreshKey(refreshToken), employeeID.String(), s.ttl).Err()
}

func (s *redisSessionStore) Consume(ctx context.Context, refreshToken string) (uuid.UUID, error) {
	val, err := s.client.GetDel(ctx, refreshKey(refreshToken)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrSessionNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrSessionNotFound
	}
	return id, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, refreshToken string) error {
	return s.client.Del(ctx, refreshKey(refreshToken)).Err()
}
