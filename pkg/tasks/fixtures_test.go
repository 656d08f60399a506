package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// taskBuilder собирает задачи для тестов.
type taskBuilder struct {
	t Task
}

func newTask() *taskBuilder {
	at := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	return &taskBuilder{t: Task{
		ID:          ID("test-task-1"),
		Title:       "Test Task",
		Description: "Test task description",
		Status:      StatusPending,
		CreatedAt:   at,
		UpdatedAt:   at,
	}}
}

func (b *taskBuilder) id(id string) *taskBuilder { b.t.ID = ID(id); return b }
func (b *taskBuilder) title(s string) *taskBuilder { b.t.Title = s; return b }
func (b *taskBuilder) description(s string) *taskBuilder { b.t.Description = s; return b }
func (b *taskBuilder) status(s Status) *taskBuilder { b.t.Status = s; return b }
func (b *taskBuilder) createdAt(at time.Time) *taskBuilder { b.t.CreatedAt = at; return b }
func (b *taskBuilder) updatedAt(at time.Time) *taskBuilder { b.t.UpdatedAt = at; return b }
func (b *taskBuilder) build() Task { return b.t }

// largeList возвращает n задач с чередующимися статусами.
func largeList(n int) []Task {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := make([]Task, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, newTask().
			id(fmt.Sprintf("task-%d", i)).
			title(fmt.Sprintf("Task %d", i)).
			description(fmt.Sprintf("Description for task %d", i)).
			status(Statuses[i%len(Statuses)]).
			createdAt(base.Add(time.Duration(i)*time.Minute)).
			build())
	}
	return out
}

// fakePersister хранит коллекцию в памяти и умеет падать на записи.
type fakePersister struct {
	mu      sync.Mutex
	initial []Task
	saved   [][]Task
	saveErr error
}

func (p *fakePersister) Load(context.Context) []Task {
	return p.initial
}

func (p *fakePersister) Save(_ context.Context, tasks []Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saved = append(p.saved, tasks)
	return nil
}

func (p *fakePersister) saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.saved)
}

func (p *fakePersister) last() []Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.saved) == 0 {
		return nil
	}
	return p.saved[len(p.saved)-1]
}

var errQuota = errors.New("quota exceeded")

// tickingClock возвращает время, которое сдвигается на 1мс при каждом вызове.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(time.Millisecond)
		return cur
	}
}

func ptr[T any](v T) *T { return &v }
