package tasks

import (
	"sync"
	"time"
)

// Коды уведомлений об ошибках.
const (
	CodeValidation  = "validation"
	CodePersistence = "persistence"
)

// DefaultErrorTTL - через сколько уведомление об ошибке гаснет само.
const DefaultErrorTTL = 5 * time.Second

// Notice - текущее сообщение об ошибке.
type Notice struct {
	Message   string
	Code      string
	Timestamp time.Time
}

// noticeBoard хранит не более одного уведомления и не более одного таймера.
// Новое уведомление вытесняет старое вместе с его таймером.
type noticeBoard struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	current *Notice
	timer   *time.Timer
	gen     uint64
}

func (b *noticeBoard) set(code, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = &Notice{Message: msg, Code: code, Timestamp: b.now()}
	b.stopLocked()
	if b.ttl <= 0 {
		return
	}
	gen := b.gen
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(gen) })
}

// expire срабатывает по таймеру; устаревший таймер ничего не трогает.
func (b *noticeBoard) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.gen {
		return
	}
	b.current = nil
	b.timer = nil
}

func (b *noticeBoard) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = nil
	b.stopLocked()
}

func (b *noticeBoard) stopLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
}

func (b *noticeBoard) get() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return Notice{}, false
	}
	return *b.current, true
}

func (b *noticeBoard) pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.timer != nil
}
