package service

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/events"
	"github.com/kahvecikaan/toyshop/internal/repository"
	"github.com/kahvecikaan/toyshop/internal/slug"
)

type CategoryService interface {
	GetCategories(ctx context.Context) ([]*domain.Category, error)
	// GetToysByCategorySlug returns domain.ErrCategoryNotFound both for an
	// unknown slug and for a category without toys.
	GetToysByCategorySlug(ctx context.Context, slug string) ([]*domain.Toy, error)
	AddCategory(ctx context.Context, req *domain.CreateCategoryRequest) (*domain.Category, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	toys       repository.ToyRepository
	eventBus   *events.EventBus[any]
	logger     hclog.Logger
	now        func() time.Time
}

func NewCategoryService(
	categories repository.CategoryRepository,
	toys repository.ToyRepository,
	eventBus *events.EventBus[any],
	logger hclog.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		toys:       toys,
		eventBus:   eventBus,
		logger:     logger,
		now:        nowUTC,
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	s.logger.Debug("Getting all categories")

	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get categories", "error", err)
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) GetToysByCategorySlug(ctx context.Context, slug string) ([]*domain.Toy, error) {
	s.logger.Debug("Getting toys by category slug", "slug", slug)

	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			s.logger.Error("Unable to get category", "slug", slug, "error", err)
		}
		return nil, err
	}

	toys, err := s.toys.Find(ctx, repository.ToyFilter{CategoryID: &category.ID})
	if err != nil {
		s.logger.Error("Unable to get toys for category", "slug", slug, "error", err)
		return nil, err
	}

	if len(toys) == 0 {
		return nil, domain.ErrCategoryNotFound
	}

	for _, toy := range toys {
		c := *category
		toy.Category = &c
	}
	return toys, nil
}

func (s *categoryService) AddCategory(ctx context.Context, req *domain.CreateCategoryRequest) (*domain.Category, error) {
	source := req.Name
	if req.Slug != nil {
		source = *req.Slug
	}

	category := &domain.Category{
		Name:      req.Name,
		Slug:      slug.Make(source),
		CreatedAt: s.now(),
	}
	if category.Slug == "" {
		return nil, domain.ErrEmptySlug
	}

	s.logger.Debug("Adding new category", "slug", category.Slug)

	if err := s.categories.AddIfAbsent(ctx, category); err != nil {
		if errors.Is(err, domain.ErrCategoryExists) {
			s.logger.Info("Category already exists", "slug", category.Slug)
		} else {
			s.logger.Error("Unable to add category", "slug", category.Slug, "error", err)
		}
		return nil, err
	}

	s.eventBus.Publish(events.CategoryAdded{CategoryID: category.ID, Slug: category.Slug})
	return category, nil
}
