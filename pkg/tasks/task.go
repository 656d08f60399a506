// Package tasks содержит модель задачи, хранилище состояния (Store)
// и адаптер сохранения коллекции в key-value слот.
package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID - непрозрачный идентификатор задачи.
// Значения создаются только через NewID или ParseID.
type ID string

// NewID выдаёт новый уникальный идентификатор.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID превращает введённую строку в идентификатор.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty task id")
	}
	return ID(s), nil
}

func (id ID) String() string { return string(id) }

// Status - статус задачи, закрытое перечисление.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses перечисляет все допустимые статусы.
var Statuses = []Status{StatusPending, StatusInProgress, StatusDone}

var statusLabels = map[Status]string{
	StatusPending:    "Pending",
	StatusInProgress: "In Progress",
	StatusDone:       "Done",
}

// Valid сообщает, входит ли статус в перечисление.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label возвращает название статуса для отображения.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseStatus разбирает статус из строки.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("unknown task status %q", s)
	}
	return st, nil
}

// StatusFilter - статус или FilterAll.
type StatusFilter string

const FilterAll StatusFilter = "all"

// ParseStatusFilter разбирает фильтр из строки; пустая строка означает FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == string(FilterAll) {
		return FilterAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return StatusFilter(st), nil
}

// Match сообщает, проходит ли статус через фильтр.
func (f StatusFilter) Match(s Status) bool {
	return f == FilterAll || Status(f) == s
}

// Task - "модель" задачи.
type Task struct {
	ID          ID
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	// UpdatedAt может быть нулевым у записей, загруженных без этого поля.
	UpdatedAt time.Time
}

// FormData - данные формы создания задачи.
type FormData struct {
	Title       string
	Description string
	Status      Status
}

// Update - частичное изменение задачи; nil-поля не трогаются.
type Update struct {
	Title       *string
	Description *string
	Status      *Status
}

// Stats - счётчики по всей коллекции.
type Stats struct {
	Total      int
	Pending    int
	InProgress int
	Done       int
}

// SortField - поле сортировки.
type SortField string

const (
	SortByTitle     SortField = "title"
	SortByCreatedAt SortField = "createdAt"
	SortByStatus    SortField = "status"
)

// SortOrder - направление сортировки.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Sort - параметры сортировки.
type Sort struct {
	Field SortField
	Order SortOrder
}

// DefaultSort - сначала новые.
var DefaultSort = Sort{Field: SortByCreatedAt, Order: Desc}

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.TrimSpace(s)); f {
	case SortByTitle, SortByCreatedAt, SortByStatus:
		return f, nil
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case Asc, Desc:
		return o, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}
