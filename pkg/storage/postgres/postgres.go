package postgres

import (
	"context"
	"errors"
	"fmt"

	"taskboard/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Хранилище данных.
type Storage struct {
	pool *pgxpool.Pool
}

// Конструктор, принимает строку подключения к БД.
// Таблица слотов создаётся, если её ещё нет.
func New(ctx context.Context, constr string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, constr)
	if err != nil {
		return nil, err
	}
	s := Storage{
		pool: pool,
	}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &s, nil
}

func (s *Storage) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_slots (
			slot_key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	if err != nil {
		return fmt.Errorf("create kv_slots: %w", err)
	}
	return nil
}

// Get возвращает значение слота по ключу.
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.pool.QueryRow(ctx, `
		SELECT value
		FROM kv_slots
		WHERE slot_key = $1;
	`,
		key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set перезаписывает значение слота целиком.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_slots (slot_key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (slot_key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
	`,
		key,
		value,
	)
	return err
}

// Remove удаляет слот по ключу.
func (s *Storage) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM kv_slots
		WHERE slot_key = $1;
	`,
		key,
	)
	return err
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
