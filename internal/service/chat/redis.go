package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/chat"
)

// RedisStore persists turns as a JSON list per session. RPUSH preserves
// creation order, so ListBySession reads back in append order without an
// explicit sort.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

type turnRecord struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

// AppendTurn appends one turn to the session list.
func (s *RedisStore) AppendTurn(ctx context.Context, turn chat.Turn) (chat.Turn, error) {
	if turn.SessionID == "" {
		return chat.Turn{}, ErrSessionRequired
	}

	turn.ID = uuid.NewString()
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	record := turnRecord{
		ID:        turn.ID,
		SessionID: turn.SessionID,
		Message:   turn.Message,
		Response:  turn.Response,
		Metadata:  turn.Metadata,
		CreatedAt: turn.CreatedAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return chat.Turn{}, fmt.Errorf("failed to marshal turn: %w", err)
	}

	if err := s.rdb.RPush(ctx, sessionKey(turn.SessionID), data).Err(); err != nil {
		return chat.Turn{}, fmt.Errorf("failed to append turn for session %s: %w", turn.SessionID, err)
	}

	return turn, nil
}

// ListBySession returns stored turns in creation order.
func (s *RedisStore) ListBySession(ctx context.Context, sessionID string) ([]chat.Turn, error) {
	raw, err := s.rdb.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list turns for session %s: %w", sessionID, err)
	}

	turns := make([]chat.Turn, 0, len(raw))
	for _, item := range raw {
		var record turnRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn for session %s: %w", sessionID, err)
		}
		turns = append(turns, chat.Turn{
			ID:        record.ID,
			SessionID: record.SessionID,
			Message:   record.Message,
			Response:  record.Response,
			Metadata:  record.Metadata,
			CreatedAt: record.CreatedAt,
		})
	}
	return turns, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("chat_turns_%s", sessionID)
}
