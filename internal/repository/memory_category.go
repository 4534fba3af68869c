package repository

import (
	"context"
	"sync"

	"github.com/kahvecikaan/toyshop/internal/domain"
)

type memoryCategoryRepository struct {
	categories []domain.Category
	mutex      sync.RWMutex
}

// NewMemoryCategoryRepository returns an in-memory store seeded with the
// given categories. Seed IDs are kept; new categories continue after the
// highest one.
func NewMemoryCategoryRepository(seed ...domain.Category) CategoryRepository {
	return &memoryCategoryRepository{categories: append([]domain.Category(nil), seed...)}
}

func (r *memoryCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		c := c
		result = append(result, &c)
	}
	return result, nil
}

func (r *memoryCategoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	return r.first(func(c domain.Category) bool { return c.ID == id })
}

func (r *memoryCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.first(func(c domain.Category) bool { return c.Slug == slug })
}

func (r *memoryCategoryRepository) AddIfAbsent(ctx context.Context, category *domain.Category) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var maxID uint
	for _, c := range r.categories {
		if c.Slug == category.Slug {
			return domain.ErrCategoryExists
		}
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	category.ID = maxID + 1

	next := make([]domain.Category, len(r.categories), len(r.categories)+1)
	copy(next, r.categories)
	r.categories = append(next, *category)
	return nil
}

func (r *memoryCategoryRepository) first(match func(domain.Category) bool) (*domain.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, c := range r.categories {
		if match(c) {
			c := c
			return &c, nil
		}
	}

	return nil, domain.ErrCategoryNotFound
}
