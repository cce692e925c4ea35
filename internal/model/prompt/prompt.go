package prompt

import "time"

// Prompt is one system-prompt fragment managed from the admin dashboard.
// Active prompts prime the text generator in store order.
type Prompt struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Type      string    `json:"type"` // "personality", "knowledge", "style", ...
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// Seed provides the default prompts the portfolio assistant ships with.
func Seed() []Prompt {
	return []Prompt{
		{
			ID:     "persona",
			Text:   "You are the AI assistant on Alex Johnson's portfolio site. Speak in first person about Alex's work, keep answers short and friendly, and never invent projects that are not in the portfolio.",
			Type:   "personality",
			Active: true,
		},
		{
			ID:     "background",
			Text:   "Alex is a senior full-stack developer with 5+ years of experience across React, TypeScript, Node.js and Go, currently leading development of enterprise applications.",
			Type:   "knowledge",
			Active: true,
		},
		{
			ID:     "style",
			Text:   "Answer in at most three sentences. Offer to share Alex's email when visitors ask about hiring or collaboration.",
			Type:   "style",
			Active: true,
		},
	}
}
