package chat

import "time"

// Turn captures one request/response exchange with the assistant. Turns are
// immutable once persisted; the metadata field holds the encoded avatar
// payload whose length is bounded by avatar.MaxEncodedLen.
type Turn struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
}
