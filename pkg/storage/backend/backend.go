// Package backend открывает реализацию storage.Interface по конфигурации.
package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"taskboard/pkg/config"
	"taskboard/pkg/storage"
	"taskboard/pkg/storage/file"
	"taskboard/pkg/storage/memdb"
	"taskboard/pkg/storage/mysql"
	"taskboard/pkg/storage/postgres"
	"taskboard/pkg/storage/redis"
	"taskboard/pkg/storage/sqlite"
)

// Open создаёт хранилище указанного в cfg.Backend типа.
// Подключение к сетевым БД ограничено cfg.Timeout.
func Open(ctx context.Context, cfg config.StorageConfig) (storage.Interface, error) {
	if d := cfg.Timeout.Duration(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	var (
		st  storage.Interface
		err error
	)
	switch strings.ToLower(cfg.Backend) {
	case "memory":
		st = memdb.New(cfg.QuotaBytes)
	case "file", "":
		st, err = asInterface(file.New(cfg.Dir))
	case "postgres":
		st, err = asInterface(postgres.New(ctx, cfg.DSN))
	case "mysql":
		st, err = asInterface(mysql.New(ctx, cfg.DSN))
	case "sqlite":
		if cfg.DSN != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		st, err = asInterface(sqlite.New(cfg.DSN))
	case "redis":
		st, err = asInterface(redis.New(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisPrefix))
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// asInterface не даёт типизированному nil попасть в storage.Interface.
func asInterface(s storage.Interface, err error) (storage.Interface, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
