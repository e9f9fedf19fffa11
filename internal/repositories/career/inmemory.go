package career

import (
	"context"
	"sync"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. It is
// used for catalog seeding and in tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]wjdr.Career
}

// NewInMemory creates a new in-memory career catalog.
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]wjdr.Career),
	}
}

// Save stores a career template after validating its plan.
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	career, err := wjdr.NewCareer(input.Career)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[career.Name] = *career

	return &SaveOutput{Career: career}, nil
}

// Get retrieves a career template by name.
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("career name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	career, exists := r.store[input.Name]
	if !exists {
		return nil, errors.NotFoundf("career %q not found", input.Name)
	}

	// Copy so callers cannot mutate the catalog.
	return &GetOutput{Career: &career}, nil
}

// List retrieves every stored career template.
func (r *InMemoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	careers := make([]*wjdr.Career, 0, len(r.store))
	for name := range r.store {
		career := r.store[name]
		if input.BasicOnly && !career.Basic {
			continue
		}
		careers = append(careers, &career)
	}

	return &ListOutput{Careers: careers}, nil
}
