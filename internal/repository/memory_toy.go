package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/kahvecikaan/toyshop/internal/domain"
)

// memoryToyRepository keeps toys in insertion order. Mutations build a new
// slice instead of editing the current one, so a slice handed out by a
// reader never changes underneath it.
type memoryToyRepository struct {
	toys  []*domain.Toy
	mutex sync.RWMutex
}

func NewMemoryToyRepository(seed ...*domain.Toy) ToyRepository {
	toys := make([]*domain.Toy, 0, len(seed))
	for _, t := range seed {
		toys = append(toys, t.Clone())
	}
	return &memoryToyRepository{toys: toys}
}

func (r *memoryToyRepository) GetAll(ctx context.Context) ([]*domain.Toy, error) {
	return r.Find(ctx, ToyFilter{})
}

func (r *memoryToyRepository) GetByID(ctx context.Context, id string) (*domain.Toy, error) {
	return r.first(func(t *domain.Toy) bool { return t.ID == id })
}

func (r *memoryToyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Toy, error) {
	return r.first(func(t *domain.Toy) bool { return t.Slug == slug })
}

func (r *memoryToyRepository) Find(ctx context.Context, filter ToyFilter) ([]*domain.Toy, error) {
	r.mutex.RLock()
	toys := r.toys
	r.mutex.RUnlock()

	needle := strings.ToLower(filter.NameContains)
	result := make([]*domain.Toy, 0, len(toys))
	for _, toy := range toys {
		if needle != "" && !strings.Contains(strings.ToLower(toy.Name), needle) {
			continue
		}
		if filter.CategoryID != nil && toy.CategoryID != *filter.CategoryID {
			continue
		}
		result = append(result, toy.Clone())
	}

	return result, nil
}

func (r *memoryToyRepository) Add(ctx context.Context, toy *domain.Toy) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	next := make([]*domain.Toy, len(r.toys), len(r.toys)+1)
	copy(next, r.toys)
	r.toys = append(next, stripped(toy))
	return nil
}

func (r *memoryToyRepository) Replace(ctx context.Context, toy *domain.Toy) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	found := false
	next := make([]*domain.Toy, len(r.toys))
	for i, t := range r.toys {
		if t.ID == toy.ID && !found {
			next[i] = stripped(toy)
			found = true
			continue
		}
		next[i] = t
	}

	if !found {
		return domain.ErrToyNotFound
	}

	r.toys = next
	return nil
}

func (r *memoryToyRepository) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	next := make([]*domain.Toy, 0, len(r.toys))
	for _, t := range r.toys {
		if t.ID != id {
			next = append(next, t)
		}
	}

	r.toys = next
	return nil
}

func (r *memoryToyRepository) first(match func(*domain.Toy) bool) (*domain.Toy, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, toy := range r.toys {
		if match(toy) {
			return toy.Clone(), nil
		}
	}

	return nil, domain.ErrToyNotFound
}

// stripped copies the toy without its resolved category; only the
// reference is stored
func stripped(toy *domain.Toy) *domain.Toy {
	c := toy.Clone()
	c.Category = nil
	return c
}
