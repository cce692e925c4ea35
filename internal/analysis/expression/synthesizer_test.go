package expression

import (
	"math"
	"strings"
	"testing"
)

func TestSynthesizeEmptyText(t *testing.T) {
	s := NewSynthesizer(DefaultEmotionRules())

	targets := s.Synthesize("")
	if len(targets) != 0 {
		t.Fatalf("empty text should yield an empty map, got %v", targets)
	}
}

func TestSynthesizeValuesInRange(t *testing.T) {
	s := NewSynthesizer(DefaultEmotionRules())

	inputs := []string{
		"Wow, that is absolutely incredible news!",
		"aaaaaaaaaaaaaaaa",
		"I'm so sorry, unfortunately that project is archived.",
		"haha what a funny joke",
	}
	for _, input := range inputs {
		for key, val := range s.Synthesize(input) {
			if val < 0 || val > 1 {
				t.Fatalf("input %q: %s=%v outside [0,1]", input, key, val)
			}
		}
	}
}

func TestSynthesizeFirstEmotionRuleWins(t *testing.T) {
	s := NewSynthesizer(DefaultEmotionRules())

	// "?" matches curiosity before "wow" can reach surprise.
	targets := s.Synthesize("wow?")
	if targets["browInnerUp"] != 0.6 {
		t.Fatalf("expected curiosity browInnerUp=0.6, got %v", targets["browInnerUp"])
	}
	if targets["browOuterUpLeft"] != 0 {
		t.Fatalf("surprise deltas leaked in: browOuterUpLeft=%v", targets["browOuterUpLeft"])
	}
}

func TestSynthesizeSingleEmotionLayer(t *testing.T) {
	s := NewSynthesizer(DefaultEmotionRules())

	// Both sad and angry triggers present; only sadness (earlier rule) applies.
	targets := s.Synthesize("sad and angry")
	if targets["mouthFrownLeft"] == 0 {
		t.Fatal("expected sadness frown to be present")
	}
	if targets["browDownLeft"] != 0 {
		t.Fatalf("anger deltas should not blend in, got browDownLeft=%v", targets["browDownLeft"])
	}
}

func TestSynthesizeLipSyncVowelHeavy(t *testing.T) {
	s := NewSynthesizer(nil)

	targets := s.Synthesize("aaa")
	if targets["viseme_aa"] != 1 {
		t.Fatalf("pure-vowel text: expected viseme_aa clamped to 1, got %v", targets["viseme_aa"])
	}
	if targets["jawOpen"] != 1 {
		t.Fatalf("pure-vowel text: expected jawOpen clamped to 1, got %v", targets["jawOpen"])
	}
}

func TestSynthesizeDigraphNormalization(t *testing.T) {
	s := NewSynthesizer(nil)

	targets := s.Synthesize("chch")
	if targets["viseme_CH"] != 1 {
		t.Fatalf("expected ch digraphs collapsed into viseme_CH=1, got %v", targets)
	}
	// "c" and "h" alone would have produced viseme_kk and viseme_aa.
	if targets["viseme_kk"] != 0 || targets["viseme_aa"] != 0 {
		t.Fatalf("digraph split into single letters: %v", targets)
	}
	if targets["jawOpen"] != 0 {
		t.Fatalf("consonant-only text: expected jawOpen=0, got %v", targets["jawOpen"])
	}
}

func TestSynthesizeNeutralFallback(t *testing.T) {
	s := NewSynthesizer(DefaultEmotionRules())

	targets := s.Synthesize("1234!!!")
	if targets["jawOpen"] != 0.4 {
		t.Fatalf("expected neutral jawOpen=0.4, got %v", targets["jawOpen"])
	}
	if targets["mouthPucker"] != 0.15 {
		t.Fatalf("expected neutral mouthPucker=0.15, got %v", targets["mouthPucker"])
	}
}

func TestSynthesizeLipSyncIndependentOfEmotion(t *testing.T) {
	withRules := NewSynthesizer(DefaultEmotionRules())
	withoutRules := NewSynthesizer(nil)

	// No emotion trigger in this text, so both synthesizers agree exactly.
	const input = "redis stream"
	a := withRules.Synthesize(input)
	b := withoutRules.Synthesize(input)
	if len(a) != len(b) {
		t.Fatalf("lip-sync output diverged: %v vs %v", a, b)
	}
	for key, val := range b {
		if a[key] != val {
			t.Fatalf("lip-sync %s diverged: %v vs %v", key, a[key], val)
		}
	}
}

func TestSynthesizeRoundedToTwoDecimals(t *testing.T) {
	s := NewSynthesizer(nil)

	// Seven mappable letters gives shares like 1/7 that need rounding.
	targets := s.Synthesize("banana eats")
	for key, val := range targets {
		scaled := val * 100
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Fatalf("%s=%v not rounded to two decimals", key, val)
		}
	}
}

func TestSynthesizeOnlyKnownKeys(t *testing.T) {
	s := NewSynthesizer(DefaultEmotionRules())

	targets := s.Synthesize("Wow, tell me more about the vector search demo?")
	for key := range targets {
		if strings.HasPrefix(key, "viseme_") {
			continue
		}
		switch key {
		case "jawOpen", "browInnerUp", "eyeWideLeft", "eyeWideRight", "mouthPucker":
		default:
			t.Fatalf("unexpected morph key %q", key)
		}
	}
}
