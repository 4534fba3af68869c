package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	logger          hclog.Logger
}

func NewCategoryHandler(cs service.CategoryService, log hclog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: cs,
		logger:          log,
	}
}

// GetCategories handles GET /categories
//
// swagger:route GET /categories categories listCategories
//
// Returns every category.
//
// Responses:
//
//	200: categoriesResponse
//	500: errorResponse
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetCategories(r.Context())
	if err != nil {
		h.logger.Error("Error getting categories", "error", err)
		writeInternalError(w, CodeGetError, "Error retrieving categories", err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetToysByCategorySlug handles GET /categories/{slug}
//
// swagger:route GET /categories/{slug} categories getCategoryToys
//
// Returns the toys filed under the category.
//
// Responses:
//
//	200: toysResponse
//	404: errorResponse
//	500: errorResponse
func (h *CategoryHandler) GetToysByCategorySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	toys, err := h.categoryService.GetToysByCategorySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, CodeCategoryNotFound, "Category not found")
			return
		}
		h.logger.Error("Error getting category toys", "slug", slug, "error", err)
		writeInternalError(w, CodeGetError, "Error retrieving category by slug", err)
		return
	}

	writeJSON(w, http.StatusOK, toys)
}

// AddCategory handles POST /categories
//
// swagger:route POST /categories categories addCategory
//
// Creates a category. The slug is derived from the given slug or the name.
//
// Responses:
//
//	201: categoryResponse
//	400: errorResponse
//	500: errorResponse
func (h *CategoryHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ContextKeyBody).(*domain.CreateCategoryRequest)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid category data")
		return
	}

	category, err := h.categoryService.AddCategory(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, category)
	case errors.Is(err, domain.ErrCategoryExists):
		writeError(w, http.StatusBadRequest, CodeCategoryExists, "Category already exists")
	case errors.Is(err, domain.ErrEmptySlug):
		writeValidationError(w, "Invalid category data", domain.ValidationErrors{{Field: "slug", Message: err.Error()}})
	default:
		h.logger.Error("Error adding category", "error", err)
		writeInternalError(w, CodeCategoryAddError, "Error creating category", err)
	}
}
