package prompt

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store exposes prompt retrieval and admin management.
type Store interface {
	List() []Prompt
	ListActive() []Prompt
	FindByID(id string) (Prompt, bool)
	Create(p Prompt) Prompt
	Update(id string, p Prompt) (Prompt, bool)
	Delete(id string) bool
}

// MemoryStore implements Store with an in-memory ordered slice. Order is
// insertion order, which is also the priming order for the generator.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Prompt
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied prompts.
func NewMemoryStore(items []Prompt) *MemoryStore {
	owned := make([]Prompt, len(items))
	copy(owned, items)
	for i := range owned {
		if owned[i].ID == "" {
			owned[i].ID = uuid.NewString()
		}
		if owned[i].CreatedAt.IsZero() {
			owned[i].CreatedAt = time.Now().UTC()
		}
	}
	return &MemoryStore{items: owned}
}

// List returns all prompts in insertion order.
func (s *MemoryStore) List() []Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Prompt(nil), s.items...)
}

// ListActive returns prompts with the active flag set, preserving order.
func (s *MemoryStore) ListActive() []Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Prompt, 0, len(s.items))
	for _, item := range s.items {
		if item.Active {
			active = append(active, item)
		}
	}
	return active
}

// FindByID looks up a prompt by identifier.
func (s *MemoryStore) FindByID(id string) (Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Prompt{}, false
}

// Create appends a prompt, assigning an ID and timestamp.
func (s *MemoryStore) Create(p Prompt) Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	s.items = append(s.items, p)
	return p
}

// Update replaces the text, type and active flag of an existing prompt.
func (s *MemoryStore) Update(id string, p Prompt) (Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			item.Text = p.Text
			item.Type = p.Type
			item.Active = p.Active
			s.items[i] = item
			return item, true
		}
	}
	return Prompt{}, false
}

// Delete removes a prompt by identifier.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
