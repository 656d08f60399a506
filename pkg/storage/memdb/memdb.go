// Package memdb реализует хранилище слотов в памяти процесса.
// Опциональная квота в байтах повторяет поведение localStorage браузера.
package memdb

import (
	"context"
	"sync"

	"taskboard/pkg/storage"
)

// Хранилище данных.
type Storage struct {
	mu    sync.RWMutex
	slots map[string]string
	quota int
	used  int
}

// Конструктор. quota <= 0 означает отсутствие ограничения.
func New(quota int) *Storage {
	return &Storage{
		slots: make(map[string]string),
		quota: quota,
	}
}

func (s *Storage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

// Set записывает слот. При превышении квоты прежнее значение сохраняется.
func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used + len(key) + len(value)
	if old, ok := s.slots[key]; ok {
		used -= len(key) + len(old)
	}
	if s.quota > 0 && used > s.quota {
		return storage.ErrQuotaExceeded
	}
	s.slots[key] = value
	s.used = used
	return nil
}

func (s *Storage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.slots[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.slots, key)
	}
	return nil
}

// Used возвращает занятый объём в байтах.
func (s *Storage) Used() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used
}

func (s *Storage) Close() error { return nil }
