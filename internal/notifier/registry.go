package notifier

import (
	"sync"
)

// Registry is the process-wide set of chats whose last submission failed
// to reach the spreadsheet. It is written from update handling and
// drained from the periodic notify loop, so every method takes the lock.
type Registry struct {
	chats map[int64]struct{}
	mu    sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		chats: make(map[int64]struct{}),
	}
}

// Add marks the chat as awaiting a "back online" notice. Idempotent.
func (r *Registry) Add(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.chats[chatID] = struct{}{}
}

// Discard removes the chat if present. Removing an absent chat is a no-op.
func (r *Registry) Discard(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.chats, chatID)
}

// Snapshot returns the current members; the notify loop iterates the
// copy so concurrent Adds do not block behind slow sends.
func (r *Registry) Snapshot() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats := make([]int64, 0, len(r.chats))
	for chatID := range r.chats {
		chats = append(chats, chatID)
	}

	return chats
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.chats)
}
