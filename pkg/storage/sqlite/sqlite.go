package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskboard/pkg/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// slot - строка таблицы kv_slots.
type slot struct {
	Key       string `gorm:"column:slot_key;primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (slot) TableName() string { return "kv_slots" }

// Хранилище данных.
type Storage struct {
	db   *gorm.DB
	conn *sql.DB
}

// Конструктор, принимает путь к файлу БД (или ":memory:").
// Соединение открывается здесь и закрывается при любой ошибке инициализации.
func New(path string) (*Storage, error) {
	conn, err := sql.Open(sqlite.DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// одно соединение: иначе каждая копия ":memory:" видит свою БД
	conn.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: sqlite.DriverName, DSN: path, Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(&slot{}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate kv_slots: %w", err)
	}
	return &Storage{db: db, conn: conn}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var row slot
	if err := s.db.WithContext(ctx).First(&row, "slot_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("failed to read slot: %w", err)
	}
	return row.Value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	row := slot{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&slot{}, "slot_key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove slot: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.conn.Close()
}
