package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/repository"
)

// Seed loads the demo catalog into the given stores. Categories already
// present (by slug) are reused and toys whose slug is already taken are
// skipped, so seeding twice adds nothing. It returns the number of toys
// added.
func Seed(
	ctx context.Context,
	categories repository.CategoryRepository,
	toys repository.ToyRepository,
	now time.Time,
	log hclog.Logger,
) (int, error) {
	// demo category ID -> ID assigned by the store
	ids := make(map[uint]uint)

	for _, c := range repository.DemoCategories(now) {
		demoID := c.ID
		c.ID = 0

		err := categories.AddIfAbsent(ctx, &c)
		switch {
		case err == nil:
			log.Debug("Seeded category", "slug", c.Slug, "id", c.ID)
		case errors.Is(err, domain.ErrCategoryExists):
			existing, err := categories.GetBySlug(ctx, c.Slug)
			if err != nil {
				return 0, fmt.Errorf("looking up category %s: %w", c.Slug, err)
			}
			c.ID = existing.ID
		default:
			return 0, fmt.Errorf("seeding category %s: %w", c.Slug, err)
		}

		ids[demoID] = c.ID
	}

	added := 0
	for _, toy := range repository.DemoToys(now) {
		_, err := toys.GetBySlug(ctx, toy.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrToyNotFound) {
			return added, fmt.Errorf("looking up toy %s: %w", toy.Slug, err)
		}

		toy.CategoryID = ids[toy.CategoryID]
		if err := toys.Add(ctx, toy); err != nil {
			return added, fmt.Errorf("seeding toy %s: %w", toy.Slug, err)
		}
		added++
	}

	log.Info("Seeded demo catalog", "toys_added", added)
	return added, nil
}
