package ai

import (
	"context"
	"strings"
)

// ScriptedGenerator is the canned-response fallback used when no model
// credentials are configured. It answers from a small keyword script so the
// chat widget keeps working in local development.
type ScriptedGenerator struct{}

// NewScriptedGenerator returns the fallback generator.
func NewScriptedGenerator() *ScriptedGenerator {
	return &ScriptedGenerator{}
}

type scriptedReply struct {
	keywords []string
	reply    string
}

var scriptedReplies = []scriptedReply{
	{
		keywords: []string{"skill", "technology", "tech"},
		reply:    "Alex specializes in React, TypeScript, Node.js and Go, with strong UI/UX skills and cloud experience across AWS and Docker.",
	},
	{
		keywords: []string{"project", "work", "portfolio"},
		reply:    "Alex has shipped e-commerce platforms, mobile apps and a component design system. Check the projects page for demos and source links.",
	},
	{
		keywords: []string{"contact", "hire", "email"},
		reply:    "You can reach Alex at hello@alexjohnson.dev. He is always glad to discuss new projects!",
	},
	{
		keywords: []string{"experience", "background"},
		reply:    "Alex is a senior full-stack developer with 5+ years of experience leading development of enterprise applications.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I'm Alex's assistant. Ask me about his skills, projects or experience.",
	},
}

// Generate picks the first scripted reply whose keyword set intersects the
// user message. System messages are ignored; the script is the persona.
func (g *ScriptedGenerator) Generate(_ context.Context, _ []string, userMessage string) (string, error) {
	lowered := strings.ToLower(userMessage)
	for _, entry := range scriptedReplies {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.reply, nil
			}
		}
	}
	return "I'm Alex's assistant. I can tell you about his skills, projects and experience.", nil
}
