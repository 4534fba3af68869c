package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kahvecikaan/toyshop/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type gormToyRepository struct {
	db *gorm.DB
}

func NewGormToyRepository(db *gorm.DB) ToyRepository {
	return &gormToyRepository{db: db}
}

func (r *gormToyRepository) GetAll(ctx context.Context) ([]*domain.Toy, error) {
	return r.Find(ctx, ToyFilter{})
}

func (r *gormToyRepository) GetByID(ctx context.Context, id string) (*domain.Toy, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormToyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Toy, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *gormToyRepository) Find(ctx context.Context, filter ToyFilter) ([]*domain.Toy, error) {
	q := r.db.WithContext(ctx).Model(&domain.Toy{})

	if filter.NameContains != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.NameContains)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	var toys []*domain.Toy
	if err := q.Order("created_at, id").Find(&toys).Error; err != nil {
		return nil, fmt.Errorf("querying toys: %w", err)
	}

	return toys, nil
}

func (r *gormToyRepository) Add(ctx context.Context, toy *domain.Toy) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(toy).Error; err != nil {
		return fmt.Errorf("inserting toy %s: %w", toy.ID, err)
	}
	return nil
}

func (r *gormToyRepository) Replace(ctx context.Context, toy *domain.Toy) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Toy{}).
		Where("id = ?", toy.ID).
		Select("*").
		Omit("id", clause.Associations).
		Updates(toy)
	if res.Error != nil {
		return fmt.Errorf("replacing toy %s: %w", toy.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrToyNotFound
	}
	return nil
}

func (r *gormToyRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Toy{}).Error; err != nil {
		return fmt.Errorf("deleting toy %s: %w", id, err)
	}
	return nil
}

func (r *gormToyRepository) Ping(ctx context.Context) error {
	return ping(ctx, r.db)
}

func (r *gormToyRepository) first(ctx context.Context, query string, arg any) (*domain.Toy, error) {
	var toy domain.Toy
	err := r.db.WithContext(ctx).Where(query, arg).Order("created_at, id").First(&toy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrToyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying toy: %w", err)
	}
	return &toy, nil
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
