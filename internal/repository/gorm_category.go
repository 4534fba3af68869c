package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kahvecikaan/toyshop/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	return categories, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.first(ctx, "slug = ?", slug)
}

// AddIfAbsent relies on the unique index on slug: a conflicting insert is
// skipped by the database and reported through RowsAffected.
func (r *gormCategoryRepository) AddIfAbsent(ctx context.Context, category *domain.Category) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(category)
	if res.Error != nil {
		return fmt.Errorf("inserting category %q: %w", category.Slug, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryExists
	}
	return nil
}

func (r *gormCategoryRepository) Ping(ctx context.Context) error {
	return ping(ctx, r.db)
}

func (r *gormCategoryRepository) first(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).Where(query, arg).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying category: %w", err)
	}
	return &category, nil
}
