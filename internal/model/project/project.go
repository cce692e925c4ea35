package project

import "time"

// Project is one portfolio entry shown on the projects page.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription,omitempty"`
	Category        string    `json:"category"` // "web", "mobile", "design"
	Technologies    []string  `json:"technologies"`
	ImageURL        string    `json:"imageUrl"`
	DemoURL         string    `json:"demoUrl,omitempty"`
	GithubURL       string    `json:"githubUrl,omitempty"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Seed provides the default portfolio entries.
func Seed() []Project {
	return []Project{
		{
			ID:              "commerce-platform",
			Title:           "E-Commerce Platform",
			Description:     "Full-stack storefront with real-time inventory and checkout.",
			LongDescription: "A production storefront handling catalog, cart and payment flows, with live inventory updates pushed over websockets.",
			Category:        "web",
			Technologies:    []string{"React", "Node.js", "PostgreSQL", "Stripe"},
			ImageURL:        "/images/projects/commerce.png",
			DemoURL:         "https://shop.alexjohnson.dev",
			Featured:        true,
		},
		{
			ID:           "task-app",
			Title:        "Cross-Platform Task Manager",
			Description:  "Offline-first task management app for iOS and Android.",
			Category:     "mobile",
			Technologies: []string{"React Native", "TypeScript", "SQLite"},
			ImageURL:     "/images/projects/tasks.png",
			GithubURL:    "https://github.com/alexjohnson-dev/tasks",
			Featured:     true,
		},
		{
			ID:           "design-system",
			Title:        "Component Design System",
			Description:  "Design tokens and component library used across multiple products.",
			Category:     "design",
			Technologies: []string{"Figma", "Storybook", "CSS"},
			ImageURL:     "/images/projects/design-system.png",
			Featured:     false,
		},
	}
}
