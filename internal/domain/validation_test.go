package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validCreate() CreateToyRequest {
	return CreateToyRequest{
		SKU:        "TOY-001",
		Name:       "Super Robot",
		CategoryID: 1,
	}
}

func TestCreateToyValidation(t *testing.T) {
	v := NewValidation()

	testCases := []struct {
		name   string
		modify func(r *CreateToyRequest)
		field  string
	}{
		{"Valid minimal", func(r *CreateToyRequest) {}, ""},
		{"Valid full", func(r *CreateToyRequest) {
			r.Slug = ptr("super-robot")
			r.Brand = ptr("ToyBrand")
			r.Price = ptr(int64(19000))
			r.AgeRange = ptr("3-5 years")
			r.ImageURL = ptr("https://example.com/robot.jpg")
			r.Description = ptr("A robot that walks.")
		}, ""},
		{"Short name", func(r *CreateToyRequest) { r.Name = "ab" }, "name"},
		{"Missing SKU", func(r *CreateToyRequest) { r.SKU = "" }, "sku"},
		{"Missing category", func(r *CreateToyRequest) { r.CategoryID = 0 }, "categoryId"},
		{"Price below minimum", func(r *CreateToyRequest) { r.Price = ptr(int64(99)) }, "price"},
		{"Zero price is still checked", func(r *CreateToyRequest) { r.Price = ptr(int64(0)) }, "price"},
		{"Bad image URL", func(r *CreateToyRequest) { r.ImageURL = ptr("not a url") }, "imageUrl"},
		{"Empty brand", func(r *CreateToyRequest) { r.Brand = ptr("") }, "brand"},
		{"Malformed slug", func(r *CreateToyRequest) { r.Slug = ptr("Super Robot") }, "slug"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.modify(&req)

			errs := v.Validate(&req)
			if tc.field == "" {
				assert.Empty(t, errs)
				return
			}

			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestReplaceSharesCreateRules(t *testing.T) {
	v := NewValidation()

	req := ReplaceToyRequest(validCreate())
	req.Name = "x"

	errs := v.Validate(&req)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "must be at least 3 characters", errs[0].Message)
}

func TestUpdateToyValidation(t *testing.T) {
	v := NewValidation()

	assert.Empty(t, v.Validate(&UpdateToyRequest{}))
	assert.Empty(t, v.Validate(&UpdateToyRequest{Price: ptr(int64(500))}))

	errs := v.Validate(&UpdateToyRequest{Price: ptr(int64(10)), Name: ptr("ab")})
	assert.Len(t, errs, 2)
}

func TestCreateCategoryValidation(t *testing.T) {
	v := NewValidation()

	assert.Empty(t, v.Validate(&CreateCategoryRequest{Name: "Action Figure"}))

	errs := v.Validate(&CreateCategoryRequest{Name: "AF"})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestUpdateApplyTo(t *testing.T) {
	toy := &Toy{ID: "t1", SKU: "TOY-001", Name: "Super Robot", Slug: "super-robot", CategoryID: 1, Brand: ptr("Acme")}

	(&UpdateToyRequest{Price: ptr(int64(500))}).ApplyTo(toy)

	assert.Equal(t, "Super Robot", toy.Name)
	assert.Equal(t, "Acme", *toy.Brand)
	require.NotNil(t, toy.Price)
	assert.Equal(t, int64(500), *toy.Price)
}

func TestToyClone(t *testing.T) {
	toy := &Toy{ID: "t1", Brand: ptr("Acme"), Price: ptr(int64(100))}

	c := toy.Clone()
	*c.Brand = "Other"
	*c.Price = 200

	assert.Equal(t, "Acme", *toy.Brand)
	assert.Equal(t, int64(100), *toy.Price)
}
