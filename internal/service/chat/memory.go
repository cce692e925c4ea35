package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/chat"
)

// MemoryStore keeps turns in memory, suitable for local development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	turns map[string][]chat.Turn
}

// NewMemoryStore bootstraps the in-memory turn store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		turns: make(map[string][]chat.Turn),
	}
}

// AppendTurn stores a turn under its session, assigning ID and timestamp.
func (s *MemoryStore) AppendTurn(_ context.Context, turn chat.Turn) (chat.Turn, error) {
	if turn.SessionID == "" {
		return chat.Turn{}, ErrSessionRequired
	}

	turn.ID = uuid.NewString()
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.turns[turn.SessionID] = append(s.turns[turn.SessionID], turn)
	s.mu.Unlock()

	return turn, nil
}

// ListBySession returns stored turns in creation order. An unknown session
// yields an empty slice, not an error: a fresh widget polling its history
// before the first message is not a failure.
func (s *MemoryStore) ListBySession(_ context.Context, sessionID string) ([]chat.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[sessionID]
	copied := make([]chat.Turn, len(turns))
	copy(copied, turns)
	return copied, nil
}
