package memory

import (
	"context"
	"sync"

	"github.com/r507/suguan-bot/internal/domain/models"
)

// SessionRepository keeps per-chat dialog state in memory. Sessions are
// short-lived and deliberately not persisted across restarts.
type SessionRepository struct {
	dialogs map[int64]models.Dialog
	mu      sync.RWMutex
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		dialogs: make(map[int64]models.Dialog),
	}
}

// GetDialog returns the active dialog for the chat, or nil when idle.
func (r *SessionRepository) GetDialog(_ context.Context, chatID int64) (models.Dialog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.dialogs[chatID], nil
}

func (r *SessionRepository) SetDialog(_ context.Context, chatID int64, dialog models.Dialog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dialogs[chatID] = dialog

	return nil
}

func (r *SessionRepository) ClearDialog(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.dialogs, chatID)

	return nil
}
