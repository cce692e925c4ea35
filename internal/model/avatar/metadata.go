package avatar

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaxEncodedLen caps the serialized metadata stored with every chat turn.
// Overflow fails the request instead of truncating the payload.
const MaxEncodedLen = 500

// ErrMetadataTooLong indicates the encoded metadata exceeded MaxEncodedLen.
var ErrMetadataTooLong = errors.New("metadata too long")

// AnimationCue selects a pre-authored body-motion clip on the avatar.
type AnimationCue string

const (
	CueIdle          AnimationCue = "idle"
	CueTalking       AnimationCue = "talking"
	CueWaving        AnimationCue = "waving"
	CueNodsHead      AnimationCue = "nods head"
	CueShakesHead    AnimationCue = "shakes head"
	CueCheering      AnimationCue = "cheering"
	CuePlayingGolf   AnimationCue = "playing golf"
	CueSalsaDance    AnimationCue = "salsa dance"
	CuePunching      AnimationCue = "punching"
	CueStretching    AnimationCue = "stretching"
	CueLookingBehind AnimationCue = "looking behind"
)

// MorphTargets is a sparse blend-shape map: channel name to intensity in [0,1].
// Absent channels mean neutral; the renderer resets every channel to zero
// before applying the map, so stale expressions never survive a turn.
type MorphTargets map[string]float64

// Clone returns an independent copy of the map.
func (m MorphTargets) Clone() MorphTargets {
	if m == nil {
		return nil
	}
	out := make(MorphTargets, len(m))
	for key, val := range m {
		out[key] = val
	}
	return out
}

// ResponseMetadata is the per-turn animation payload shipped to the renderer
// and persisted alongside the chat turn.
type ResponseMetadata struct {
	Animation    AnimationCue `json:"animation"`
	MorphTargets MorphTargets `json:"morphTargets,omitempty"`
	// Note carries diagnostics such as a speech-synthesis failure.
	Note string `json:"note,omitempty"`
}

// Encode serializes the metadata as compact JSON and enforces MaxEncodedLen.
// json.Marshal writes map keys in sorted order, so the encoding is stable for
// identical inputs.
func (m ResponseMetadata) Encode() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	if len(data) > MaxEncodedLen {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrMetadataTooLong, len(data), MaxEncodedLen)
	}
	return string(data), nil
}

// DecodeMetadata restores a metadata record from its serialized form.
func DecodeMetadata(encoded string) (ResponseMetadata, error) {
	var m ResponseMetadata
	if err := json.Unmarshal([]byte(encoded), &m); err != nil {
		return ResponseMetadata{}, fmt.Errorf("failed to decode metadata: %w", err)
	}
	return m, nil
}
