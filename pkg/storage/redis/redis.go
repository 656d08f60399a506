// Package redis хранит слоты как строковые ключи Redis без TTL.
package redis

import (
	"context"
	"errors"
	"fmt"

	"taskboard/pkg/storage"

	"github.com/redis/go-redis/v9"
)

// Хранилище данных.
type Storage struct {
	client *redis.Client
	prefix string
}

// Конструктор, принимает адрес сервера и номер БД.
func New(ctx context.Context, addr string, db int, prefix string) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewWithClient(client, prefix), nil
}

// NewWithClient оборачивает уже настроенный клиент.
func NewWithClient(client *redis.Client, prefix string) *Storage {
	return &Storage{client: client, prefix: prefix}
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *Storage) Close() error { return s.client.Close() }
