package avatar

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMetadataRoundTrip(t *testing.T) {
	original := ResponseMetadata{
		Animation: CueCheering,
		MorphTargets: MorphTargets{
			"mouthSmileLeft":  0.7,
			"mouthSmileRight": 0.7,
			"viseme_aa":       0.42,
			"jawOpen":         1,
		},
		Note: "tts unavailable",
	}

	encoded, err := original.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := DecodeMetadata(encoded)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Animation != original.Animation {
		t.Fatalf("animation changed: %q vs %q", decoded.Animation, original.Animation)
	}
	if decoded.Note != original.Note {
		t.Fatalf("note changed: %q vs %q", decoded.Note, original.Note)
	}
	if len(decoded.MorphTargets) != len(original.MorphTargets) {
		t.Fatalf("morph target count changed: %d vs %d", len(decoded.MorphTargets), len(original.MorphTargets))
	}
	for key, val := range original.MorphTargets {
		if decoded.MorphTargets[key] != val {
			t.Fatalf("morph target %s changed: %v vs %v", key, decoded.MorphTargets[key], val)
		}
	}
}

func TestMetadataEncodeStable(t *testing.T) {
	meta := ResponseMetadata{
		Animation: CueTalking,
		MorphTargets: MorphTargets{
			"viseme_E": 0.31, "viseme_O": 0.12, "jawOpen": 0.5,
			"browInnerUp": 0.6, "viseme_SS": 0.25,
		},
	}

	first, err := meta.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := meta.Encode()
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if again != first {
			t.Fatalf("encoding not stable:\n%s\n%s", first, again)
		}
	}
}

func TestMetadataOmitsEmptyFields(t *testing.T) {
	meta := ResponseMetadata{Animation: CueIdle, MorphTargets: MorphTargets{}}

	encoded, err := meta.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if strings.Contains(encoded, "morphTargets") || strings.Contains(encoded, "note") {
		t.Fatalf("empty fields should be omitted, got %s", encoded)
	}
}

func TestMetadataEncodeOverflow(t *testing.T) {
	targets := make(MorphTargets)
	for i := 0; i < 40; i++ {
		targets[fmt.Sprintf("syntheticChannel%02d", i)] = 0.55
	}
	meta := ResponseMetadata{Animation: CueTalking, MorphTargets: targets}

	_, err := meta.Encode()
	if err == nil {
		t.Fatal("expected overflow error, got nil")
	}
	if !errors.Is(err, ErrMetadataTooLong) {
		t.Fatalf("expected ErrMetadataTooLong, got %v", err)
	}
}

func TestMorphTargetsClone(t *testing.T) {
	original := MorphTargets{"jawOpen": 0.5}
	clone := original.Clone()
	clone["jawOpen"] = 1

	if original["jawOpen"] != 0.5 {
		t.Fatalf("clone shares storage with the original: %v", original["jawOpen"])
	}
	if MorphTargets(nil).Clone() != nil {
		t.Fatal("nil clone should stay nil")
	}
}
