package repository

import (
	"context"

	"github.com/kahvecikaan/toyshop/internal/domain"
)

// ToyFilter selects toys in Find. Zero-valued fields do not constrain the
// result.
type ToyFilter struct {
	// NameContains matches names case-insensitively
	NameContains string
	// CategoryID matches toys in a single category
	CategoryID *uint
}

type ToyRepository interface {
	GetAll(ctx context.Context) ([]*domain.Toy, error)
	GetByID(ctx context.Context, id string) (*domain.Toy, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Toy, error)
	Find(ctx context.Context, filter ToyFilter) ([]*domain.Toy, error)
	Add(ctx context.Context, toy *domain.Toy) error
	// Replace overwrites the stored toy with the same ID, returning
	// domain.ErrToyNotFound when there is none
	Replace(ctx context.Context, toy *domain.Toy) error
	// Delete removes the toy with the given ID. Unknown IDs are not an error.
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*domain.Category, error)
	GetByID(ctx context.Context, id uint) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	// AddIfAbsent inserts the category and assigns its ID, or returns
	// domain.ErrCategoryExists when the slug is taken. The check and the
	// insert happen as one operation.
	AddIfAbsent(ctx context.Context, category *domain.Category) error
}

// Pinger is implemented by stores backed by an external database
type Pinger interface {
	Ping(ctx context.Context) error
}
