package techniquedraft

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository with a mutex guarded map. Expired
// drafts are dropped lazily when they are next touched.
type InMemoryRepository struct {
	mu    sync.Mutex
	clock clock.Clock
	store map[string]*technique.Technique
}

// NewInMemory creates an in-memory repository. A nil clock uses the system
// clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*technique.Technique),
	}
}

// Create stores a new draft
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateTechnique(input.Technique); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.live(input.Technique.ID); exists {
		return nil, errors.AlreadyExists("draft " + input.Technique.ID + " already exists")
	}
	if r.expired(input.Technique) {
		return nil, errors.NotFoundf("draft with ID %s has expired", input.Technique.ID)
	}

	r.store[input.Technique.ID] = input.Technique.Clone()
	return &CreateOutput{Technique: input.Technique.Clone()}, nil
}

// Get retrieves a draft by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.live(input.ID)
	if !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Technique: t.Clone()}, nil
}

// Update replaces an existing draft
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateTechnique(input.Technique); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.Technique.ID); !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Technique.ID)
	}
	if r.expired(input.Technique) {
		delete(r.store, input.Technique.ID)
		return nil, errors.NotFoundf("draft with ID %s has expired", input.Technique.ID)
	}

	r.store[input.Technique.ID] = input.Technique.Clone()
	return &UpdateOutput{Technique: input.Technique.Clone()}, nil
}

// Delete removes a draft
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.ID); !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// live returns an unexpired draft, evicting it when expired. Callers hold
// the write lock.
func (r *InMemoryRepository) live(id string) (*technique.Technique, bool) {
	t, ok := r.store[id]
	if !ok {
		return nil, false
	}
	if r.expired(t) {
		delete(r.store, id)
		return nil, false
	}
	return t, true
}

func (r *InMemoryRepository) expired(t *technique.Technique) bool {
	return t.ExpiresAt > 0 && r.clock.Now().Unix() >= t.ExpiresAt
}

var _ Repository = (*InMemoryRepository)(nil)
