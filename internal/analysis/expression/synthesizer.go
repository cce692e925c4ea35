// Package expression derives a sparse facial morph-target vector from reply
// text: an emotion layer picked by keyword rules plus a per-character viseme
// approximation for lip-sync. It performs no real phoneme analysis.
package expression

import (
	"math"
	"strings"

	"github.com/alexjohnson-dev/portfolio/backend/internal/model/avatar"
)

const (
	// visemeGain amplifies normalized viseme frequencies into visible
	// mouth-shape intensities.
	visemeGain = 2.5
	// jawGain converts the combined vowel share into jaw-open intensity.
	jawGain = 1.2

	neutralJawOpen     = 0.4
	neutralMouthPucker = 0.15
)

// EmotionRule maps a trigger keyword set to morph-target deltas. Rules are
// evaluated in declared order and only the first match is applied, so
// competing expressions never blend.
type EmotionRule struct {
	Name     string
	Triggers []string
	Deltas   avatar.MorphTargets
}

// Synthesizer builds morph-target vectors from reply text. The rule table is
// fixed at construction; the synthesizer itself is stateless and safe for
// concurrent use.
type Synthesizer struct {
	rules []EmotionRule
}

// NewSynthesizer copies the emotion rule table once at construction.
func NewSynthesizer(rules []EmotionRule) *Synthesizer {
	owned := make([]EmotionRule, len(rules))
	copy(owned, rules)
	return &Synthesizer{rules: owned}
}

// Synthesize returns the merged emotion + lip-sync morph map for text. Every
// value is clamped to [0,1] and rounded to two decimals to keep the encoded
// metadata compact. Empty text yields an empty map. On the rare key collision
// between the two layers the lip-sync value wins, since it is written last.
func (s *Synthesizer) Synthesize(text string) avatar.MorphTargets {
	targets := make(avatar.MorphTargets)

	lowered := strings.ToLower(text)
	s.applyEmotion(lowered, targets)
	applyLipSync(lowered, targets)

	for key, val := range targets {
		targets[key] = roundIntensity(clamp01(val))
	}
	return targets
}

// applyEmotion applies the first rule whose trigger set intersects the text.
func (s *Synthesizer) applyEmotion(lowered string, targets avatar.MorphTargets) {
	if lowered == "" {
		return
	}

	for _, rule := range s.rules {
		for _, trigger := range rule.Triggers {
			if trigger == "" {
				continue
			}
			if strings.Contains(lowered, trigger) {
				for key, val := range rule.Deltas {
					targets[key] = val
				}
				return
			}
		}
	}
}

// applyLipSync builds a viseme histogram over the digraph-normalized text and
// writes normalized, amplified intensities. Runs independently of the emotion
// layer whenever the text is non-empty.
func applyLipSync(lowered string, targets avatar.MorphTargets) {
	if lowered == "" {
		return
	}

	counts := make(map[string]int)
	total := 0

	chars := []byte(lowered)
	for i := 0; i < len(chars); i++ {
		ch := chars[i]
		if ch < 'a' || ch > 'z' {
			continue
		}

		token := string(ch)
		if i < len(chars)-1 {
			digraph := string(chars[i : i+2])
			if digraph == "ch" || digraph == "sh" || digraph == "th" {
				token = digraph
				i++
			}
		}

		viseme, ok := visemeByToken[token]
		if !ok {
			continue
		}
		counts[viseme]++
		total++
	}

	if total == 0 {
		// Text with no mappable characters (digits, punctuation, emoji)
		// still moves the mouth a little.
		targets["jawOpen"] = neutralJawOpen
		targets["mouthPucker"] = neutralMouthPucker
		return
	}

	vowelShare := 0.0
	for viseme, count := range counts {
		share := float64(count) / float64(total)
		targets[viseme] = share * visemeGain
		if vowelVisemes[viseme] {
			vowelShare += share
		}
	}
	targets["jawOpen"] = vowelShare * jawGain
}

// visemeByToken groups lower-case letters (and the ch/sh/th digraphs) into
// mouth-shape channels. Vowels keep their identity; consonants collapse into
// labial, dental, velar, nasal, sibilant, fricative and affricate groups.
var visemeByToken = map[string]string{
	"a": "viseme_aa",
	"e": "viseme_E",
	"i": "viseme_I",
	"o": "viseme_O",
	"u": "viseme_U",

	"p": "viseme_PP", "b": "viseme_PP", "m": "viseme_PP",
	"t": "viseme_DD", "d": "viseme_DD",
	"th": "viseme_TH",
	"k": "viseme_kk", "g": "viseme_kk", "c": "viseme_kk", "q": "viseme_kk", "x": "viseme_kk",
	"n": "viseme_nn", "l": "viseme_nn",
	"s": "viseme_SS", "z": "viseme_SS",
	"f": "viseme_FF", "v": "viseme_FF",
	"ch": "viseme_CH", "j": "viseme_CH", "sh": "viseme_CH",
	"r": "viseme_RR",

	// Approximations for the leftovers.
	"w": "viseme_U",
	"y": "viseme_I",
	"h": "viseme_aa",
}

var vowelVisemes = map[string]bool{
	"viseme_aa": true,
	"viseme_E":  true,
	"viseme_I":  true,
	"viseme_O":  true,
	"viseme_U":  true,
}

// DefaultEmotionRules is the ordered emotion table for the portfolio
// assistant. Rule order is significant: earlier rules shadow later ones.
func DefaultEmotionRules() []EmotionRule {
	return []EmotionRule{
		{
			Name:     "curiosity",
			Triggers: []string{"?", "curious", "wonder", "interesting", "tell me more"},
			Deltas: avatar.MorphTargets{
				"browInnerUp": 0.6,
				"eyeWideLeft": 0.25, "eyeWideRight": 0.25,
			},
		},
		{
			Name:     "amusement",
			Triggers: []string{"haha", "funny", "joke", "lol", "glad", "happy"},
			Deltas: avatar.MorphTargets{
				"mouthSmileLeft": 0.7, "mouthSmileRight": 0.7,
				"cheekSquintLeft": 0.4, "cheekSquintRight": 0.4,
			},
		},
		{
			Name:     "sadness",
			Triggers: []string{"sad", "sorry", "unfortunately", "regret"},
			Deltas: avatar.MorphTargets{
				"mouthFrownLeft": 0.6, "mouthFrownRight": 0.6,
				"browInnerUp": 0.5,
			},
		},
		{
			Name:     "anger",
			Triggers: []string{"angry", "furious", "annoyed", "unacceptable"},
			Deltas: avatar.MorphTargets{
				"browDownLeft": 0.7, "browDownRight": 0.7,
				"mouthPressLeft": 0.5, "mouthPressRight": 0.5,
				"noseSneerLeft": 0.3, "noseSneerRight": 0.3,
			},
		},
		{
			Name:     "surprise",
			Triggers: []string{"wow", "incredible", "unbelievable", "surprised", "whoa"},
			Deltas: avatar.MorphTargets{
				"eyeWideLeft": 0.7, "eyeWideRight": 0.7,
				"browOuterUpLeft": 0.5, "browOuterUpRight": 0.5,
				"jawOpen": 0.3,
			},
		},
	}
}

func clamp01(val float64) float64 {
	if val < 0 {
		return 0
	}
	if val > 1 {
		return 1
	}
	return val
}

func roundIntensity(val float64) float64 {
	return math.Round(val*100) / 100
}
