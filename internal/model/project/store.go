package project

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store exposes project retrieval and admin management.
type Store interface {
	List() []Project
	ListFeatured() []Project
	ListByCategory(category string) []Project
	FindByID(id string) (Project, bool)
	Create(p Project) Project
	Update(id string, p Project) (Project, bool)
	Delete(id string) bool
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Project
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied projects.
func NewMemoryStore(items []Project) *MemoryStore {
	owned := make([]Project, len(items))
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

// List returns all projects.
func (s *MemoryStore) List() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Project(nil), s.items...)
}

// ListFeatured returns projects flagged as featured.
func (s *MemoryStore) ListFeatured() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := make([]Project, 0, len(s.items))
	for _, item := range s.items {
		if item.Featured {
			featured = append(featured, item)
		}
	}
	return featured
}

// ListByCategory returns projects in the given category.
func (s *MemoryStore) ListByCategory(category string) []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Project, 0, len(s.items))
	for _, item := range s.items {
		if item.Category == category {
			matched = append(matched, item)
		}
	}
	return matched
}

// FindByID looks up a project by identifier.
func (s *MemoryStore) FindByID(id string) (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Project{}, false
}

// Create appends a project, assigning an ID and timestamp.
func (s *MemoryStore) Create(p Project) Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	s.items = append(s.items, p)
	return p
}

// Update replaces the mutable fields of an existing project.
func (s *MemoryStore) Update(id string, p Project) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			p.ID = item.ID
			p.CreatedAt = item.CreatedAt
			s.items[i] = p
			return p, true
		}
	}
	return Project{}, false
}

// Delete removes a project by identifier.
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
