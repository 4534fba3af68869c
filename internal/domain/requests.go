package domain

// CreateToyRequest is the body accepted by POST /toys
//
// swagger:model
type CreateToyRequest struct {
	SKU         string  `json:"sku" validate:"required,min=3"`
	Name        string  `json:"name" validate:"required,min=3"`
	Slug        *string `json:"slug" validate:"omitnil,min=3,slug"`
	CategoryID  uint    `json:"categoryId" validate:"required"`
	Brand       *string `json:"brand" validate:"omitnil,min=2"`
	Price       *int64  `json:"price" validate:"omitnil,min=100"`
	AgeRange    *string `json:"ageRange" validate:"omitnil,min=1"`
	ImageURL    *string `json:"imageUrl" validate:"omitnil,url"`
	Description *string `json:"description" validate:"omitnil,min=3"`
}

// ReplaceToyRequest is the body accepted by PUT /toys/{id}. It carries the
// same fields and rules as a create.
//
// swagger:model
type ReplaceToyRequest CreateToyRequest

// UpdateToyRequest is the body accepted by PATCH /toys/{id}. Absent fields
// leave the stored value untouched.
//
// swagger:model
type UpdateToyRequest struct {
	SKU         *string `json:"sku" validate:"omitnil,min=3"`
	Name        *string `json:"name" validate:"omitnil,min=3"`
	Slug        *string `json:"slug" validate:"omitnil,min=3,slug"`
	CategoryID  *uint   `json:"categoryId" validate:"omitnil,gt=0"`
	Brand       *string `json:"brand" validate:"omitnil,min=2"`
	Price       *int64  `json:"price" validate:"omitnil,min=100"`
	AgeRange    *string `json:"ageRange" validate:"omitnil,min=1"`
	ImageURL    *string `json:"imageUrl" validate:"omitnil,url"`
	Description *string `json:"description" validate:"omitnil,min=3"`
}

// ApplyTo overwrites the fields of t that are present in the request.
func (r *UpdateToyRequest) ApplyTo(t *Toy) {
	if r.SKU != nil {
		t.SKU = *r.SKU
	}
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Slug != nil {
		t.Slug = *r.Slug
	}
	if r.CategoryID != nil {
		t.CategoryID = *r.CategoryID
		t.Category = nil
	}
	if r.Brand != nil {
		t.Brand = cloneString(r.Brand)
	}
	if r.Price != nil {
		p := *r.Price
		t.Price = &p
	}
	if r.AgeRange != nil {
		t.AgeRange = cloneString(r.AgeRange)
	}
	if r.ImageURL != nil {
		t.ImageURL = cloneString(r.ImageURL)
	}
	if r.Description != nil {
		t.Description = cloneString(r.Description)
	}
}

// CreateCategoryRequest is the body accepted by POST /categories
//
// swagger:model
type CreateCategoryRequest struct {
	Name string  `json:"name" validate:"required,min=3"`
	Slug *string `json:"slug" validate:"omitnil,min=3"`
}
