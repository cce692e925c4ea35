// Package conversation orchestrates one chat turn: generate the reply, derive
// the avatar animation payload, synthesize speech best-effort, gate the
// metadata size and persist the turn.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/alexjohnson-dev/portfolio/backend/internal/analysis/animation"
	"github.com/alexjohnson-dev/portfolio/backend/internal/analysis/expression"
	"github.com/alexjohnson-dev/portfolio/backend/internal/model/avatar"
	"github.com/alexjohnson-dev/portfolio/backend/internal/model/chat"
	"github.com/alexjohnson-dev/portfolio/backend/internal/model/prompt"
	chatservice "github.com/alexjohnson-dev/portfolio/backend/internal/service/chat"
)

var (
	// ErrMessageRequired indicates an empty user message.
	ErrMessageRequired = errors.New("message is required")
	// ErrSessionRequired indicates a missing session identifier.
	ErrSessionRequired = errors.New("sessionId is required")
	// ErrGenerationFailed indicates the upstream text generator failed.
	ErrGenerationFailed = errors.New("response generation failed")
)

// speechFailureNote is recorded in metadata when speech synthesis fails.
const speechFailureNote = "tts unavailable"

// Generator produces the assistant reply. systemMessages are the active
// prompt texts in priming order.
type Generator interface {
	Generate(ctx context.Context, systemMessages []string, userMessage string) (string, error)
}

// Speaker converts reply text to audio. Failures are non-fatal for the turn.
type Speaker interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

// Request is one incoming chat message.
type Request struct {
	SessionID string
	Message   string
}

// Result is the outcome of a completed turn. Audio is nil when speech
// synthesis is disabled or failed.
type Result struct {
	Turn  chat.Turn
	Audio []byte
}

// Service runs the chat turn pipeline. Each request is handled independently;
// the only shared state lives behind the TurnStore.
type Service struct {
	generator   Generator
	speaker     Speaker
	store       chatservice.TurnStore
	prompts     prompt.Store
	classifier  *animation.Classifier
	synthesizer *expression.Synthesizer
}

// NewService wires the pipeline. speaker may be nil when speech synthesis is
// not configured.
func NewService(generator Generator, speaker Speaker, store chatservice.TurnStore, prompts prompt.Store) *Service {
	return &Service{
		generator:   generator,
		speaker:     speaker,
		store:       store,
		prompts:     prompts,
		classifier:  animation.NewClassifier(animation.DefaultRules()),
		synthesizer: expression.NewSynthesizer(expression.DefaultEmotionRules()),
	}
}

// HandleTurn executes the full pipeline for one request. The external calls
// are awaited sequentially: the reply must exist before it can be classified,
// synthesized or spoken. There is no mid-pipeline abort; a turn either
// completes or fails outright.
func (s *Service) HandleTurn(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Result{}, ErrSessionRequired
	}
	if req.Message == "" {
		return Result{}, ErrMessageRequired
	}

	response, err := s.generator.Generate(ctx, s.activePromptTexts(), req.Message)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	cue := s.classifier.Classify(response)
	targets := s.synthesizer.Synthesize(response)

	audio, note := s.speakBestEffort(ctx, req.SessionID, response)

	metadata := avatar.ResponseMetadata{
		Animation:    cue,
		MorphTargets: targets,
		Note:         note,
	}
	encoded, err := metadata.Encode()
	if err != nil {
		// Metadata overflow is a table/config bug, not a transient
		// condition; the turn is rejected, never truncated.
		return Result{}, err
	}

	turn, err := s.store.AppendTurn(ctx, chat.Turn{
		SessionID: req.SessionID,
		Message:   req.Message,
		Response:  response,
		Metadata:  encoded,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to persist turn: %w", err)
	}

	log.Printf("[chat] completed turn for session=%s, animation=%s, audio=%t", req.SessionID, cue, audio != nil)
	return Result{Turn: turn, Audio: audio}, nil
}

// ListTurns returns the persisted history for a session in creation order.
func (s *Service) ListTurns(ctx context.Context, sessionID string) ([]chat.Turn, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrSessionRequired
	}
	return s.store.ListBySession(ctx, sessionID)
}

// speakBestEffort invokes the speaker and swallows its failures. The returned
// note is empty on success and on deliberately skipped synthesis.
func (s *Service) speakBestEffort(ctx context.Context, sessionID, response string) ([]byte, string) {
	if s.speaker == nil || strings.TrimSpace(response) == "" {
		return nil, ""
	}

	audio, err := s.speaker.Speak(ctx, response)
	if err != nil {
		log.Printf("[chat] speech synthesis failed for session=%s, continuing without audio: %v", sessionID, err)
		return nil, speechFailureNote
	}
	return audio, ""
}

func (s *Service) activePromptTexts() []string {
	active := s.prompts.ListActive()
	texts := make([]string, 0, len(active))
	for _, p := range active {
		texts = append(texts, p.Text)
	}
	return texts
}
