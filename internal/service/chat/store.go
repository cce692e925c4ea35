package chat

import (
	"context"
	"errors"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/chat"
)

var (
	// ErrSessionRequired indicates a turn without a session identifier.
	ErrSessionRequired = errors.New("session id is required")
)

// TurnStore persists chat turns. Each append is an independent write; there is
// no multi-record atomicity. Implementations must return turns per session in
// creation order and provide read-your-writes consistency within a session.
type TurnStore interface {
	AppendTurn(ctx context.Context, turn chat.Turn) (chat.Turn, error)
	ListBySession(ctx context.Context, sessionID string) ([]chat.Turn, error)
}
