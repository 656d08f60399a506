package storage

import (
	"context"
	"errors"
)

// Ошибки, общие для всех реализаций хранилища.
var (
	// ErrNotFound возвращается, когда слот с таким ключом отсутствует.
	ErrNotFound = errors.New("storage: slot not found")
	// ErrQuotaExceeded возвращается, когда запись не помещается в квоту хранилища.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
	// ErrUnknownBackend возвращается фабрикой Open для неизвестного типа хранилища.
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// Interface задаёт контракт на работу с key-value хранилищем.
// Значение слота всегда текстовое.
type Interface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
