package repository

import (
	"time"

	"github.com/kahvecikaan/toyshop/internal/domain"
)

// DemoCategories is the starter catalog used by the in-memory store and the
// seed command.
func DemoCategories(now time.Time) []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Action Figure", Slug: "action-figure", CreatedAt: now},
		{ID: 2, Name: "Building Blocks", Slug: "building-blocks", CreatedAt: now},
		{ID: 3, Name: "Plush", Slug: "plush", CreatedAt: now},
	}
}

// DemoToys references the categories returned by DemoCategories.
func DemoToys(now time.Time) []*domain.Toy {
	str := func(s string) *string { return &s }
	price := func(p int64) *int64 { return &p }

	return []*domain.Toy{
		{
			ID:          "01929b9c-6f43-7cc2-9a53-6d2b0e2f0f01",
			SKU:         "TOY-001",
			Name:        "Galaxy Ranger",
			Slug:        "galaxy-ranger",
			CategoryID:  1,
			Brand:       str("Starforge"),
			Price:       price(19000),
			AgeRange:    str("6-10 years"),
			ImageURL:    str("https://example.com/images/galaxy-ranger.jpg"),
			Description: str("Poseable space ranger with a light-up visor."),
			CreatedAt:   now,
		},
		{
			ID:          "01929b9c-6f43-7cc2-9a53-6d2b0e2f0f02",
			SKU:         "TOY-002",
			Name:        "Castle Builder Set",
			Slug:        "castle-builder-set",
			CategoryID:  2,
			Brand:       str("Brickworks"),
			Price:       price(45000),
			AgeRange:    str("8-12 years"),
			Description: str("Five hundred bricks for a medieval castle."),
			CreatedAt:   now,
		},
		{
			ID:         "01929b9c-6f43-7cc2-9a53-6d2b0e2f0f03",
			SKU:        "TOY-003",
			Name:       "Sleepy Bear",
			Slug:       "sleepy-bear",
			CategoryID: 3,
			Price:      price(12500),
			AgeRange:   str("0-3 years"),
			CreatedAt:  now,
		},
	}
}
