package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/avatar"
	"github.com/alexjohnson-dev/portfolio/backend/internal/model/prompt"
	chatservice "github.com/alexjohnson-dev/portfolio/backend/internal/service/chat"
)

type stubGenerator struct {
	response string
	err      error

	gotSystem  []string
	gotMessage string
}

func (g *stubGenerator) Generate(_ context.Context, systemMessages []string, userMessage string) (string, error) {
	g.gotSystem = systemMessages
	g.gotMessage = userMessage
	return g.response, g.err
}

type stubSpeaker struct {
	audio []byte
	err   error
	calls int
}

func (s *stubSpeaker) Speak(context.Context, string) ([]byte, error) {
	s.calls++
	return s.audio, s.err
}

func newTestService(gen Generator, speaker Speaker) (*Service, *chatservice.MemoryStore) {
	store := chatservice.NewMemoryStore()
	prompts := prompt.NewMemoryStore(prompt.Seed())
	return NewService(gen, speaker, store, prompts), store
}

func TestHandleTurnClassifiesGeneratedResponse(t *testing.T) {
	// The user greeting contains "hello" but classification runs on the
	// generated reply, which matches nothing and falls back to talking.
	gen := &stubGenerator{response: "Hi! How can I help?"}
	svc, store := newTestService(gen, &stubSpeaker{audio: []byte("mp3")})

	result, err := svc.HandleTurn(context.Background(), Request{SessionID: "s1", Message: "hello there"})
	if err != nil {
		t.Fatalf("turn failed: %v", err)
	}

	meta, err := avatar.DecodeMetadata(result.Turn.Metadata)
	if err != nil {
		t.Fatalf("metadata decode failed: %v", err)
	}
	if meta.Animation != avatar.CueTalking {
		t.Fatalf("expected %q, got %q", avatar.CueTalking, meta.Animation)
	}
	if len(meta.MorphTargets) == 0 {
		t.Fatal("expected lip-sync morph targets for a non-empty reply")
	}
	if string(result.Audio) != "mp3" {
		t.Fatalf("expected audio to pass through, got %q", result.Audio)
	}

	turns, _ := store.ListBySession(context.Background(), "s1")
	if len(turns) != 1 {
		t.Fatalf("expected 1 persisted turn, got %d", len(turns))
	}
	if turns[0].Response != "Hi! How can I help?" {
		t.Fatalf("unexpected persisted response %q", turns[0].Response)
	}
}

func TestHandleTurnKeywordAnimation(t *testing.T) {
	gen := &stubGenerator{response: "Congratulations on shipping the release!"}
	svc, _ := newTestService(gen, nil)

	result, err := svc.HandleTurn(context.Background(), Request{SessionID: "s1", Message: "we shipped"})
	if err != nil {
		t.Fatalf("turn failed: %v", err)
	}

	meta, err := avatar.DecodeMetadata(result.Turn.Metadata)
	if err != nil {
		t.Fatalf("metadata decode failed: %v", err)
	}
	if meta.Animation != avatar.CueCheering {
		t.Fatalf("expected %q, got %q", avatar.CueCheering, meta.Animation)
	}
}

func TestHandleTurnEmptyResponse(t *testing.T) {
	speaker := &stubSpeaker{audio: []byte("mp3")}
	gen := &stubGenerator{response: ""}
	svc, store := newTestService(gen, speaker)

	result, err := svc.HandleTurn(context.Background(), Request{SessionID: "s1", Message: "anything"})
	if err != nil {
		t.Fatalf("turn failed: %v", err)
	}

	meta, err := avatar.DecodeMetadata(result.Turn.Metadata)
	if err != nil {
		t.Fatalf("metadata decode failed: %v", err)
	}
	if meta.Animation != avatar.CueIdle {
		t.Fatalf("expected %q for an empty reply, got %q", avatar.CueIdle, meta.Animation)
	}
	if len(meta.MorphTargets) != 0 {
		t.Fatalf("expected a neutral face, got %v", meta.MorphTargets)
	}
	if speaker.calls != 0 {
		t.Fatal("speech synthesis should be skipped for an empty reply")
	}
	if result.Audio != nil {
		t.Fatal("expected no audio for an empty reply")
	}

	turns, _ := store.ListBySession(context.Background(), "s1")
	if len(turns) != 1 {
		t.Fatalf("empty reply should still be persisted, got %d turns", len(turns))
	}
}

func TestHandleTurnSpeechFailureIsNonFatal(t *testing.T) {
	speaker := &stubSpeaker{err: errors.New("upstream closed")}
	gen := &stubGenerator{response: "Glad you asked about the vector search demo."}
	svc, store := newTestService(gen, speaker)

	result, err := svc.HandleTurn(context.Background(), Request{SessionID: "s1", Message: "show me"})
	if err != nil {
		t.Fatalf("speech failure must not fail the turn: %v", err)
	}
	if result.Audio != nil {
		t.Fatalf("expected nil audio after a speech failure, got %d bytes", len(result.Audio))
	}

	meta, err := avatar.DecodeMetadata(result.Turn.Metadata)
	if err != nil {
		t.Fatalf("metadata decode failed: %v", err)
	}
	if meta.Note != "tts unavailable" {
		t.Fatalf("expected failure note in metadata, got %q", meta.Note)
	}

	turns, _ := store.ListBySession(context.Background(), "s1")
	if len(turns) != 1 {
		t.Fatalf("turn should persist despite speech failure, got %d", len(turns))
	}
}

func TestHandleTurnGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}
	svc, store := newTestService(gen, nil)

	_, err := svc.HandleTurn(context.Background(), Request{SessionID: "s1", Message: "hi"})
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}

	turns, _ := store.ListBySession(context.Background(), "s1")
	if len(turns) != 0 {
		t.Fatalf("failed turn must not be persisted, got %d", len(turns))
	}
}

func TestHandleTurnValidation(t *testing.T) {
	svc, _ := newTestService(&stubGenerator{response: "ok"}, nil)

	if _, err := svc.HandleTurn(context.Background(), Request{SessionID: "s1"}); !errors.Is(err, ErrMessageRequired) {
		t.Fatalf("expected ErrMessageRequired, got %v", err)
	}
	if _, err := svc.HandleTurn(context.Background(), Request{SessionID: "  ", Message: "hi"}); !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}

func TestHandleTurnPrimesActivePrompts(t *testing.T) {
	gen := &stubGenerator{response: "ok"}
	store := chatservice.NewMemoryStore()
	prompts := prompt.NewMemoryStore([]prompt.Prompt{
		{Text: "persona", Type: "persona", Active: true},
		{Text: "disabled", Type: "style", Active: false},
		{Text: "background", Type: "background", Active: true},
	})
	svc := NewService(gen, nil, store, prompts)

	if _, err := svc.HandleTurn(context.Background(), Request{SessionID: "s1", Message: "hi"}); err != nil {
		t.Fatalf("turn failed: %v", err)
	}

	if len(gen.gotSystem) != 2 || gen.gotSystem[0] != "persona" || gen.gotSystem[1] != "background" {
		t.Fatalf("expected active prompts in order, got %v", gen.gotSystem)
	}
	if gen.gotMessage != "hi" {
		t.Fatalf("expected user message forwarded, got %q", gen.gotMessage)
	}
}

func TestListTurnsRequiresSession(t *testing.T) {
	svc, _ := newTestService(&stubGenerator{response: "ok"}, nil)

	if _, err := svc.ListTurns(context.Background(), ""); !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}
