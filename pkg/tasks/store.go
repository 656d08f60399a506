package tasks

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
)

// Persister - узкий контракт сохранения коллекции. Реализуется Adapter.
type Persister interface {
	Load(ctx context.Context) []Task
	Save(ctx context.Context, tasks []Task) error
}

// Сообщения об ошибках, которые видит пользователь.
const (
	MsgTitleRequired = "Task title is required"
	MsgInvalidStatus = "Invalid task status"
	MsgSaveFailed    = "Failed to save tasks"
)

// Store владеет коллекцией задач и параметрами фильтрации/сортировки.
// Коллекция меняется только через CreateTask, UpdateTask и DeleteTask;
// каждое изменение сразу сохраняется через Persister.
type Store struct {
	mu          sync.Mutex
	p           Persister
	log         *slog.Logger
	now         func() time.Time
	newID       func() ID
	saveTimeout time.Duration
	collator    *collate.Collator

	tasks  []Task
	search string
	filter StatusFilter
	sort   Sort

	view      []Task
	viewValid bool

	notices *noticeBoard
}

// Option настраивает Store.
type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithErrorTTL задаёт время жизни уведомления об ошибке; 0 отключает автоочистку.
func WithErrorTTL(d time.Duration) Option {
	return func(s *Store) { s.notices.ttl = d }
}

func WithIDGenerator(gen func() ID) Option {
	return func(s *Store) { s.newID = gen }
}

// WithSaveTimeout ограничивает время одной записи в хранилище.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Store) { s.saveTimeout = d }
}

// New создаёт Store и загружает начальное состояние через p.
func New(ctx context.Context, p Persister, opts ...Option) *Store {
	s := &Store{
		p:           p,
		log:         slog.Default(),
		now:         time.Now,
		newID:       NewID,
		saveTimeout: 5 * time.Second,
		collator:    newCollator(),
		filter:      FilterAll,
		sort:        DefaultSort,
		notices:     &noticeBoard{ttl: DefaultErrorTTL},
	}
	for _, o := range opts {
		o(s)
	}
	s.notices.now = s.now
	s.tasks = slices.Clone(p.Load(ctx))
	return s
}

// CreateTask добавляет задачу. Пустой заголовок или неверный статус
// не меняют коллекцию и выставляют уведомление об ошибке.
func (s *Store) CreateTask(form FormData) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(form.Title)
	if title == "" {
		s.failLocked(CodeValidation, MsgTitleRequired)
		return Task{}, false
	}
	if !form.Status.Valid() {
		s.failLocked(CodeValidation, MsgInvalidStatus)
		return Task{}, false
	}

	now := s.now()
	t := Task{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(form.Description),
		Status:      form.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, t)
	s.changedLocked()
	s.log.Debug("task created", "id", t.ID)
	return t, true
}

// UpdateTask применяет непустые поля upd к задаче id.
// Отсутствующий id не меняет коллекцию, но запись и сброс ошибки выполняются.
func (s *Store) UpdateTask(id ID, upd Update) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		s.changedLocked()
		s.log.Debug("update of unknown task", "id", id)
		return Task{}, false
	}

	t := s.tasks[i]
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			s.failLocked(CodeValidation, MsgTitleRequired)
			return Task{}, false
		}
		t.Title = title
	}
	if upd.Description != nil {
		t.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			s.failLocked(CodeValidation, MsgInvalidStatus)
			return Task{}, false
		}
		t.Status = *upd.Status
	}

	t.UpdatedAt = s.now()
	if t.UpdatedAt.Before(t.CreatedAt) {
		t.UpdatedAt = t.CreatedAt
	}
	s.tasks[i] = t
	s.changedLocked()
	s.log.Debug("task updated", "id", id)
	return t, true
}

// DeleteTask удаляет задачу. Для отсутствующего id коллекция не меняется,
// но записывается как после любого удаления; возвращается false.
func (s *Store) DeleteTask(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		s.changedLocked()
		s.log.Debug("delete of unknown task", "id", id)
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.changedLocked()
	s.log.Debug("task deleted", "id", id)
	return true
}

// GetTaskByID ищет задачу по id.
func (s *Store) GetTaskByID(id ID) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Tasks возвращает копию коллекции в порядке вставки.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
	s.viewValid = false
}

func (s *Store) SetStatusFilter(f StatusFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.viewValid = false
}

func (s *Store) SetSort(field SortField, order SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = Sort{Field: field, Order: order}
	s.viewValid = false
}

// ToggleSortOrder меняет направление сортировки на противоположное.
func (s *Store) ToggleSortOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sort.Order == Asc {
		s.sort.Order = Desc
	} else {
		s.sort.Order = Asc
	}
	s.viewValid = false
}

func (s *Store) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *Store) StatusFilter() StatusFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Store) Sort() Sort {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// FilteredTasks возвращает отфильтрованную и отсортированную коллекцию.
// Результат кэшируется до следующего изменения задач или параметров.
func (s *Store) FilteredTasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.viewValid {
		view := filterTasks(s.tasks, s.search, s.filter)
		sortTasks(view, s.sort, s.collator)
		s.view = view
		s.viewValid = true
	}
	return slices.Clone(s.view)
}

// Stats считает задачи по статусам во всей коллекции, без учёта фильтров.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countStats(s.tasks)
}

// Error возвращает текст текущей ошибки.
func (s *Store) Error() (string, bool) {
	n, ok := s.notices.get()
	return n.Message, ok
}

// Notice возвращает текущее уведомление целиком.
func (s *Store) Notice() (Notice, bool) {
	return s.notices.get()
}

// ClearError гасит уведомление и отменяет таймер автоочистки.
func (s *Store) ClearError() {
	s.notices.clear()
}

func (s *Store) indexLocked(id ID) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

// changedLocked сбрасывает кэш, гасит прежнюю ошибку и сохраняет коллекцию.
// Ошибка записи не откатывает изменение в памяти.
func (s *Store) changedLocked() {
	s.viewValid = false
	s.notices.clear()

	ctx := context.Background()
	if s.saveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.saveTimeout)
		defer cancel()
	}
	if err := s.p.Save(ctx, slices.Clone(s.tasks)); err != nil {
		s.log.Error("error saving tasks to storage", "error", err)
		s.notices.set(CodePersistence, MsgSaveFailed)
	}
}

func (s *Store) failLocked(code, msg string) {
	s.log.Debug("task operation rejected", "code", code, "reason", msg)
	s.notices.set(code, msg)
}
