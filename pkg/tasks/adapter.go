package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"taskboard/pkg/storage"
)

// record - формат задачи в слоте хранилища.
type record struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Adapter сохраняет коллекцию задач в один именованный слот хранилища.
type Adapter struct {
	st   storage.Interface
	key  string
	log  *slog.Logger
	seed func() []Task
}

// AdapterOption настраивает Adapter.
type AdapterOption func(*Adapter)

// WithAdapterLogger задаёт логгер адаптера.
func WithAdapterLogger(l *slog.Logger) AdapterOption {
	return func(a *Adapter) { a.log = l }
}

// WithSeed подменяет начальный набор задач.
func WithSeed(seed func() []Task) AdapterOption {
	return func(a *Adapter) { a.seed = seed }
}

// NewAdapter создаёт адаптер поверх хранилища st и слота key.
func NewAdapter(st storage.Interface, key string, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		st:   st,
		key:  key,
		log:  slog.Default(),
		seed: Seed,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Key возвращает имя слота.
func (a *Adapter) Key() string { return a.key }

// Load читает коллекцию. Отсутствующий или повреждённый слот
// заменяется начальным набором задач, ошибка наружу не передаётся.
func (a *Adapter) Load(ctx context.Context) []Task {
	raw, err := a.st.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.log.Debug("no stored tasks, using seed", "key", a.key)
		} else {
			a.log.Error("error loading tasks from storage", "key", a.key, "error", err)
		}
		return a.seed()
	}

	tasks, err := decode(raw)
	if err != nil {
		a.log.Error("error loading tasks from storage", "key", a.key, "error", err)
		return a.seed()
	}
	return tasks
}

// Save перезаписывает слот полной коллекцией.
func (a *Adapter) Save(ctx context.Context, tasks []Task) error {
	raw, err := encode(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := a.st.Set(ctx, a.key, raw); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// Reset удаляет слот; следующий Load вернёт начальный набор.
func (a *Adapter) Reset(ctx context.Context) error {
	if err := a.st.Remove(ctx, a.key); err != nil {
		return fmt.Errorf("reset tasks: %w", err)
	}
	return nil
}

func encode(tasks []Task) (string, error) {
	recs := make([]record, 0, len(tasks))
	for _, t := range tasks {
		recs = append(recs, toRecord(t))
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decode(raw string) ([]Task, error) {
	var recs []record
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	if recs == nil {
		return nil, errors.New("stored tasks are not a list")
	}

	tasks := make([]Task, 0, len(recs))
	seen := make(map[ID]bool, len(recs))
	for i, r := range recs {
		t, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("task #%d: %w", i, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("task #%d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = true
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func toRecord(t Task) record {
	r := record{
		ID:          string(t.ID),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
	}
	if !t.CreatedAt.IsZero() {
		created := t.CreatedAt
		r.CreatedAt = &created
	}
	if !t.UpdatedAt.IsZero() {
		updated := t.UpdatedAt
		r.UpdatedAt = &updated
	}
	return r
}

func fromRecord(r record) (Task, error) {
	id, err := ParseID(r.ID)
	if err != nil {
		return Task{}, err
	}
	status, err := ParseStatus(r.Status)
	if err != nil {
		return Task{}, err
	}
	t := Task{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
	}
	if r.CreatedAt != nil {
		t.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		t.UpdatedAt = *r.UpdatedAt
	}
	return t, nil
}

// Seed возвращает встроенный набор из трёх примерных задач.
// Время задано по местным часам.
func Seed() []Task {
	at := func(day, hour, min int) time.Time {
		return time.Date(2024, time.March, day, hour, min, 0, 0, time.Local)
	}
	return []Task{
		{
			ID:          ID("1"),
			Title:       "Fix login bug",
			Description: "Users are unable to log in when entering correct credentials",
			Status:      StatusDone,
			CreatedAt:   at(15, 14, 5),
			UpdatedAt:   at(15, 14, 5),
		},
		{
			ID:          ID("2"),
			Title:       "Implement search",
			Description: "Add search functionality to the task list",
			Status:      StatusInProgress,
			CreatedAt:   at(16, 10, 30),
			UpdatedAt:   at(16, 10, 30),
		},
		{
			ID:          ID("3"),
			Title:       "Update documentation",
			Description: "Update user documentation with new features",
			Status:      StatusPending,
			CreatedAt:   at(17, 9, 15),
			UpdatedAt:   at(17, 9, 15),
		},
	}
}
