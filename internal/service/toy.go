package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/events"
	"github.com/kahvecikaan/toyshop/internal/repository"
	"github.com/kahvecikaan/toyshop/internal/slug"
)

type ToyService interface {
	GetToys(ctx context.Context) ([]*domain.Toy, error)
	SearchToys(ctx context.Context, query string) ([]*domain.Toy, error)
	GetToysByCategory(ctx context.Context, categoryID uint) ([]*domain.Toy, error)
	GetToyBySlug(ctx context.Context, slug string) (*domain.Toy, error)
	AddToy(ctx context.Context, req *domain.CreateToyRequest) (*domain.Toy, error)
	UpdateToy(ctx context.Context, id string, req *domain.UpdateToyRequest) (*domain.Toy, error)
	// ReplaceToy overwrites the toy with the given ID, or creates it under
	// that ID when absent. created reports which of the two happened.
	ReplaceToy(ctx context.Context, id string, req *domain.ReplaceToyRequest) (toy *domain.Toy, created bool, err error)
	DeleteToy(ctx context.Context, id string) error
}

type toyService struct {
	toys       repository.ToyRepository
	categories repository.CategoryRepository
	eventBus   *events.EventBus[any]
	logger     hclog.Logger
	now        func() time.Time
	newID      func() (string, error)
}

func NewToyService(
	toys repository.ToyRepository,
	categories repository.CategoryRepository,
	eventBus *events.EventBus[any],
	logger hclog.Logger) ToyService {
	return &toyService{
		toys:       toys,
		categories: categories,
		eventBus:   eventBus,
		logger:     logger,
		now:        nowUTC,
		newID:      newToyID,
	}
}

func newToyID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *toyService) GetToys(ctx context.Context) ([]*domain.Toy, error) {
	s.logger.Debug("Getting all toys")

	toys, err := s.toys.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get toys", "error", err)
		return nil, err
	}

	return s.withCategories(ctx, toys)
}

func (s *toyService) SearchToys(ctx context.Context, query string) ([]*domain.Toy, error) {
	s.logger.Debug("Searching toys", "query", query)

	toys, err := s.toys.Find(ctx, repository.ToyFilter{NameContains: query})
	if err != nil {
		s.logger.Error("Unable to search toys", "query", query, "error", err)
		return nil, err
	}

	return s.withCategories(ctx, toys)
}

func (s *toyService) GetToysByCategory(ctx context.Context, categoryID uint) ([]*domain.Toy, error) {
	s.logger.Debug("Getting toys by category", "category_id", categoryID)

	toys, err := s.toys.Find(ctx, repository.ToyFilter{CategoryID: &categoryID})
	if err != nil {
		s.logger.Error("Unable to get toys by category", "category_id", categoryID, "error", err)
		return nil, err
	}

	return s.withCategories(ctx, toys)
}

func (s *toyService) GetToyBySlug(ctx context.Context, slug string) (*domain.Toy, error) {
	s.logger.Debug("Getting toy by slug", "slug", slug)

	toy, err := s.toys.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrToyNotFound) {
			s.logger.Error("Unable to get toy by slug", "slug", slug, "error", err)
		}
		return nil, err
	}

	return s.withCategory(ctx, toy)
}

func (s *toyService) AddToy(ctx context.Context, req *domain.CreateToyRequest) (*domain.Toy, error) {
	s.logger.Debug("Adding new toy", "name", req.Name)

	id, err := s.newID()
	if err != nil {
		s.logger.Error("Unable to generate toy ID", "error", err)
		return nil, fmt.Errorf("generating toy id: %w", err)
	}

	toy := fromCreate(id, (*domain.ReplaceToyRequest)(req))
	toy.CreatedAt = s.now()

	if err := s.toys.Add(ctx, toy); err != nil {
		s.logger.Error("Unable to add toy", "name", req.Name, "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.ToyAdded{ToyID: toy.ID, Slug: toy.Slug})
	return s.withCategory(ctx, toy)
}

func (s *toyService) UpdateToy(ctx context.Context, id string, req *domain.UpdateToyRequest) (*domain.Toy, error) {
	s.logger.Debug("Updating toy", "id", id)

	toy, err := s.toys.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrToyNotFound) {
			s.logger.Error("Unable to load toy for update", "id", id, "error", err)
		}
		return nil, err
	}

	req.ApplyTo(toy)
	updatedAt := nextModification(s.now(), toy.UpdatedAt)
	toy.UpdatedAt = &updatedAt

	if err := s.toys.Replace(ctx, toy); err != nil {
		s.logger.Error("Unable to update toy", "id", id, "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.ToyUpdated{ToyID: id})
	return s.withCategory(ctx, toy)
}

func (s *toyService) ReplaceToy(ctx context.Context, id string, req *domain.ReplaceToyRequest) (*domain.Toy, bool, error) {
	s.logger.Debug("Replacing toy", "id", id)

	existing, err := s.toys.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrToyNotFound) {
		s.logger.Error("Unable to load toy for replace", "id", id, "error", err)
		return nil, false, err
	}

	toy := fromCreate(id, req)

	if existing == nil {
		toy.CreatedAt = s.now()
		if err := s.toys.Add(ctx, toy); err != nil {
			s.logger.Error("Unable to create toy on replace", "id", id, "error", err)
			return nil, false, err
		}

		s.eventBus.Publish(events.ToyReplaced{ToyID: id, Created: true})
		toy, err = s.withCategory(ctx, toy)
		return toy, true, err
	}

	toy.CreatedAt = existing.CreatedAt
	updatedAt := nextModification(s.now(), existing.UpdatedAt)
	toy.UpdatedAt = &updatedAt

	if err := s.toys.Replace(ctx, toy); err != nil {
		s.logger.Error("Unable to replace toy", "id", id, "error", err)
		return nil, false, err
	}

	s.eventBus.Publish(events.ToyReplaced{ToyID: id})
	toy, err = s.withCategory(ctx, toy)
	return toy, false, err
}

func (s *toyService) DeleteToy(ctx context.Context, id string) error {
	s.logger.Debug("Deleting toy", "id", id)

	if err := s.toys.Delete(ctx, id); err != nil {
		s.logger.Error("Unable to delete toy", "id", id, "error", err)
		return err
	}

	s.eventBus.Publish(events.ToyDeleted{ToyID: id})
	return nil
}

// fromCreate builds a toy from a full body. An absent slug is derived from
// the name.
func fromCreate(id string, req *domain.ReplaceToyRequest) *domain.Toy {
	toy := &domain.Toy{
		ID:          id,
		SKU:         req.SKU,
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		CategoryID:  req.CategoryID,
		Brand:       req.Brand,
		Price:       req.Price,
		AgeRange:    req.AgeRange,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
	if req.Slug != nil {
		toy.Slug = *req.Slug
	}
	return toy.Clone()
}

// withCategory resolves the category a toy references. A dangling
// reference leaves Category nil.
func (s *toyService) withCategory(ctx context.Context, toy *domain.Toy) (*domain.Toy, error) {
	toys, err := s.withCategories(ctx, []*domain.Toy{toy})
	if err != nil {
		return nil, err
	}
	return toys[0], nil
}

func (s *toyService) withCategories(ctx context.Context, toys []*domain.Toy) ([]*domain.Toy, error) {
	resolved := make(map[uint]*domain.Category)

	for _, toy := range toys {
		category, seen := resolved[toy.CategoryID]
		if !seen {
			c, err := s.categories.GetByID(ctx, toy.CategoryID)
			switch {
			case err == nil:
				category = c
			case errors.Is(err, domain.ErrCategoryNotFound):
				s.logger.Warn("Toy references unknown category", "id", toy.ID, "category_id", toy.CategoryID)
			default:
				s.logger.Error("Unable to resolve category", "category_id", toy.CategoryID, "error", err)
				return nil, err
			}
			resolved[toy.CategoryID] = category
		}

		if category != nil {
			c := *category
			toy.Category = &c
		}
	}

	return toys, nil
}
