package animation

import (
	"testing"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/avatar"
)

func TestClassifyPhraseWinsOverSubstring(t *testing.T) {
	c := NewClassifier([]Rule{
		{Keyword: "golf", Cue: avatar.CueTalking},
		{Keyword: "playing golf", Cue: avatar.CuePlayingGolf},
	})

	got := c.Classify("I spent sunday playing golf with my dad")
	if got != avatar.CuePlayingGolf {
		t.Fatalf("expected %q (longest keyword first), got %q", avatar.CuePlayingGolf, got)
	}
}

func TestClassifyDefaultTableGolf(t *testing.T) {
	c := NewClassifier(DefaultRules())

	if got := c.Classify("Nothing beats playing golf at dawn"); got != avatar.CuePlayingGolf {
		t.Fatalf("expected %q, got %q", avatar.CuePlayingGolf, got)
	}
	if got := c.Classify("I enjoy golf"); got != avatar.CuePlayingGolf {
		t.Fatalf("expected %q for bare golf keyword, got %q", avatar.CuePlayingGolf, got)
	}
}

func TestClassifyFallbacks(t *testing.T) {
	c := NewClassifier(DefaultRules())

	if got := c.Classify(""); got != avatar.CueIdle {
		t.Fatalf("empty text: expected %q, got %q", avatar.CueIdle, got)
	}
	if got := c.Classify("the weather is mild this week"); got != avatar.CueTalking {
		t.Fatalf("unmatched text: expected %q, got %q", avatar.CueTalking, got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(DefaultRules())

	if got := c.Classify("HELLO there!"); got != avatar.CueWaving {
		t.Fatalf("expected %q, got %q", avatar.CueWaving, got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(DefaultRules())

	const input = "yes, let's celebrate with a salsa dance"
	first := c.Classify(input)
	for i := 0; i < 50; i++ {
		if got := c.Classify(input); got != first {
			t.Fatalf("classification changed between calls: %q then %q", first, got)
		}
	}
}

func TestClassifierDoesNotMutateInputRules(t *testing.T) {
	rules := []Rule{
		{Keyword: "ab", Cue: avatar.CueWaving},
		{Keyword: "abcd", Cue: avatar.CueCheering},
	}
	NewClassifier(rules)

	if rules[0].Keyword != "ab" || rules[1].Keyword != "abcd" {
		t.Fatal("constructor reordered the caller's slice")
	}
}
