package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore — стор сессий поверх Redis: общий для нескольких инстансов
// сервиса, TTL ключа совпадает со сроком жизни сессии.
type RedisStore struct {
	client *redis.Client
	prefix string
}

const redisPrefix = "session:"

// NewRedisStore подключается к Redis и проверяет доступность через PING.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	const op = "session.NewRedisStore"

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RedisStore{client: client, prefix: redisPrefix}, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, sess Session) error {
	const op = "session.RedisStore.Save"

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		// Сохранять уже истёкшую сессию бессмысленно.
		return nil
	}

	if err := s.client.Set(ctx, s.prefix+id, raw, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	const op = "session.RedisStore.Get"

	raw, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}

		return Session{}, fmt.Errorf("%s: %w", op, err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, fmt.Errorf("%s: %w", op, err)
	}

	if sess.Expired(time.Now()) {
		return Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	const op = "session.RedisStore.Delete"

	if err := s.client.Del(ctx, s.prefix+id).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
