// Package animation maps assistant reply text to a discrete body-animation
// cue via ordered keyword matching.
package animation

import (
	"sort"
	"strings"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/avatar"
)

// Rule binds a lower-case keyword or phrase to an animation cue.
type Rule struct {
	Keyword string
	Cue     avatar.AnimationCue
}

// Classifier performs substring keyword matching over an immutable rule table.
// Rules are ordered by descending keyword length so compound phrases win over
// the shorter keywords they contain ("playing golf" before "golf"); ties keep
// their declaration order. Safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// NewClassifier copies and orders the rule table once at construction.
func NewClassifier(rules []Rule) *Classifier {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Keyword) > len(ordered[j].Keyword)
	})
	return &Classifier{rules: ordered}
}

// Classify returns the cue of the first matching rule. Empty text yields the
// idle cue, non-empty text without a match yields the generic talking cue.
// Matching is plain substring containment over the lower-cased text, so short
// generic keywords ("no", "yes") can fire inside unrelated words.
func (c *Classifier) Classify(text string) avatar.AnimationCue {
	if text == "" {
		return avatar.CueIdle
	}

	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		if rule.Keyword == "" {
			continue
		}
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Cue
		}
	}

	return avatar.CueTalking
}

// DefaultRules is the keyword table shipped with the portfolio avatar.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "playing golf", Cue: avatar.CuePlayingGolf},
		{Keyword: "golf", Cue: avatar.CuePlayingGolf},
		{Keyword: "salsa dance", Cue: avatar.CueSalsaDance},
		{Keyword: "salsa", Cue: avatar.CueSalsaDance},
		{Keyword: "dance", Cue: avatar.CueSalsaDance},
		{Keyword: "look behind", Cue: avatar.CueLookingBehind},
		{Keyword: "behind you", Cue: avatar.CueLookingBehind},
		{Keyword: "congratulations", Cue: avatar.CueCheering},
		{Keyword: "hooray", Cue: avatar.CueCheering},
		{Keyword: "celebrate", Cue: avatar.CueCheering},
		{Keyword: "cheer", Cue: avatar.CueCheering},
		{Keyword: "hello", Cue: avatar.CueWaving},
		{Keyword: "goodbye", Cue: avatar.CueWaving},
		{Keyword: "wave", Cue: avatar.CueWaving},
		{Keyword: "greetings", Cue: avatar.CueWaving},
		{Keyword: "punch", Cue: avatar.CuePunching},
		{Keyword: "fight", Cue: avatar.CuePunching},
		{Keyword: "stretch", Cue: avatar.CueStretching},
		{Keyword: "yeah", Cue: avatar.CueNodsHead},
		{Keyword: "yes", Cue: avatar.CueNodsHead},
		{Keyword: "agreed", Cue: avatar.CueNodsHead},
		{Keyword: "nope", Cue: avatar.CueShakesHead},
		{Keyword: "no", Cue: avatar.CueShakesHead},
	}
}
