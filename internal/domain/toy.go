package domain

import "time"

// Toy represents a catalog entry
//
// swagger:model
type Toy struct {
	// The ID of the toy
	//
	// example: 01929b9c-6f43-7cc2-9a53-6d2b0e2f0f6b
	ID string `json:"id" gorm:"primaryKey;size:64"`

	// Stock keeping unit
	//
	// required: true
	// min length: 3
	// example: TOY-001
	SKU string `json:"sku" gorm:"size:64;not null"`

	// required: true
	// min length: 3
	// example: Super Robot
	Name string `json:"name" gorm:"size:255;not null"`

	// Alternate lookup key, derived from the name when absent
	//
	// example: super-robot
	Slug string `json:"slug" gorm:"size:255;index"`

	// required: true
	// example: 1
	CategoryID uint `json:"categoryId" gorm:"not null;index"`

	// The category the toy belongs to, when it can be resolved
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	// example: ToyBrand
	Brand *string `json:"brand"`

	// Price in minor currency units
	//
	// min: 100
	// example: 19000
	Price *int64 `json:"price"`

	// example: 3-5 years
	AgeRange *string `json:"ageRange"`

	// example: https://example.com/image.jpg
	ImageURL *string `json:"imageUrl"`

	// example: A fun action figure for kids.
	Description *string `json:"description" gorm:"type:text"`

	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt *time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// Clone returns a copy of t that shares no pointers with it.
func (t *Toy) Clone() *Toy {
	c := *t
	c.Brand = cloneString(t.Brand)
	c.AgeRange = cloneString(t.AgeRange)
	c.ImageURL = cloneString(t.ImageURL)
	c.Description = cloneString(t.Description)
	if t.Price != nil {
		p := *t.Price
		c.Price = &p
	}
	if t.UpdatedAt != nil {
		u := *t.UpdatedAt
		c.UpdatedAt = &u
	}
	if t.Category != nil {
		cat := *t.Category
		c.Category = &cat
	}
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
