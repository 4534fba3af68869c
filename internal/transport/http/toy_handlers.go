package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/service"
)

type ToyHandler struct {
	toyService service.ToyService
	logger     hclog.Logger
}

func NewToyHandler(ts service.ToyService, log hclog.Logger) *ToyHandler {
	return &ToyHandler{
		toyService: ts,
		logger:     log,
	}
}

// GetToys handles GET /toys
//
// swagger:route GET /toys toys listToys
//
// Returns every toy in the catalog.
//
// Responses:
//
//	200: toysResponse
//	500: errorResponse
func (h *ToyHandler) GetToys(w http.ResponseWriter, r *http.Request) {
	toys, err := h.toyService.GetToys(r.Context())
	if err != nil {
		h.logger.Error("Error getting toys", "error", err)
		writeInternalError(w, CodeGetError, "Error retrieving toys", err)
		return
	}

	writeJSON(w, http.StatusOK, toys)
}

// SearchToys handles GET /toys/search?q=
//
// swagger:route GET /toys/search toys searchToys
//
// Returns toys whose name contains q, ignoring case.
//
// Responses:
//
//	200: toysResponse
//	400: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *ToyHandler) SearchToys(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, CodeInvalidQuery, "Query parameter 'q' is required")
		return
	}

	toys, err := h.toyService.SearchToys(r.Context(), query)
	if err != nil {
		h.logger.Error("Error searching toys", "query", query, "error", err)
		writeInternalError(w, CodeSearchError, "Error searching toys", err)
		return
	}

	if len(toys) == 0 {
		writeError(w, http.StatusNotFound, CodeSearchNotFound, "No toys found matching the query")
		return
	}

	writeJSON(w, http.StatusOK, toys)
}

// GetToysByCategory handles GET /toys/category/{categoryId}
//
// swagger:route GET /toys/category/{categoryId} toys listToysByCategory
//
// Returns the toys of one category. A category ID that is not a number
// matches no toys.
//
// Responses:
//
//	200: toysResponse
//	404: errorResponse
//	500: errorResponse
func (h *ToyHandler) GetToysByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseUint(mux.Vars(r)["categoryId"], 10, 0)
	if err != nil {
		writeError(w, http.StatusNotFound, CodeToyNotFound, "No toys found for the given category ID")
		return
	}

	toys, err := h.toyService.GetToysByCategory(r.Context(), uint(categoryID))
	if err != nil {
		h.logger.Error("Error getting toys by category", "category_id", categoryID, "error", err)
		writeInternalError(w, CodeGetError, "Error retrieving toys by category", err)
		return
	}

	if len(toys) == 0 {
		writeError(w, http.StatusNotFound, CodeToyNotFound, "No toys found for the given category ID")
		return
	}

	writeJSON(w, http.StatusOK, toys)
}

// GetToyBySlug handles GET /toys/{slug}
//
// swagger:route GET /toys/{slug} toys getToyBySlug
//
// Returns a single toy by slug.
//
// Responses:
//
//	200: toyResponse
//	404: errorResponse
//	500: errorResponse
func (h *ToyHandler) GetToyBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	toy, err := h.toyService.GetToyBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrToyNotFound) {
			writeError(w, http.StatusNotFound, CodeToyNotFound, "Toy not found")
			return
		}

		h.logger.Error("Error getting toy", "slug", slug, "error", err)
		writeInternalError(w, CodeGetError, "Error retrieving toy by slug", err)
		return
	}

	writeJSON(w, http.StatusOK, toy)
}

// AddToy handles POST /toys
//
// swagger:route POST /toys toys addToy
//
// Adds a new toy.
//
// Responses:
//
//	201: toyMessageResponse
//	400: errorResponse
//	500: errorResponse
func (h *ToyHandler) AddToy(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ContextKeyBody).(*domain.CreateToyRequest)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid toy data")
		return
	}

	toy, err := h.toyService.AddToy(r.Context(), req)
	if err != nil {
		h.logger.Error("Error adding toy", "error", err)
		writeInternalError(w, CodeAddError, "Error creating toy data", err)
		return
	}

	writeJSON(w, http.StatusCreated, &MessageResponse{Message: "Added new toy data", Data: toy})
}

// UpdateToy handles PATCH /toys/{id}
//
// swagger:route PATCH /toys/{id} toys updateToy
//
// Updates the given fields of an existing toy.
//
// Responses:
//
//	200: toyMessageResponse
//	400: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *ToyHandler) UpdateToy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, ok := r.Context().Value(ContextKeyBody).(*domain.UpdateToyRequest)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid toy data")
		return
	}

	toy, err := h.toyService.UpdateToy(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrToyNotFound) {
			writeError(w, http.StatusNotFound, CodeToyNotFound, "Toy not found")
			return
		}
		h.logger.Error("Error updating toy", "id", id, "error", err)
		writeInternalError(w, CodeUpdateError, "Error updating toy data", err)
		return
	}

	writeJSON(w, http.StatusOK, &MessageResponse{Message: "Toy data updated", Data: toy})
}

// ReplaceToy handles PUT /toys/{id}
//
// swagger:route PUT /toys/{id} toys replaceToy
//
// Replaces a toy, creating it under the given ID when it does not exist.
//
// Responses:
//
//	200: toyMessageResponse
//	201: toyMessageResponse
//	400: errorResponse
//	500: errorResponse
func (h *ToyHandler) ReplaceToy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, ok := r.Context().Value(ContextKeyBody).(*domain.ReplaceToyRequest)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid toy data")
		return
	}

	toy, created, err := h.toyService.ReplaceToy(r.Context(), id, req)
	if err != nil {
		h.logger.Error("Error replacing toy", "id", id, "error", err)
		writeInternalError(w, CodeReplaceError, "Error replacing toy data", err)
		return
	}

	if created {
		writeJSON(w, http.StatusCreated, &MessageResponse{Message: "Toy not found. Created new toy.", Data: toy})
		return
	}

	writeJSON(w, http.StatusOK, &MessageResponse{Message: "Toy data replaced", Data: toy})
}

// DeleteToy handles DELETE /toys/{id}
//
// swagger:route DELETE /toys/{id} toys deleteToy
//
// Deletes a toy. Unknown IDs are reported as deleted as well.
//
// Responses:
//
//	200: messageResponse
//	500: errorResponse
func (h *ToyHandler) DeleteToy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.toyService.DeleteToy(r.Context(), id); err != nil {
		h.logger.Error("Error deleting toy", "id", id, "error", err)
		writeInternalError(w, CodeDeleteError, "Error deleting toy", err)
		return
	}

	writeJSON(w, http.StatusOK, &MessageResponse{Message: "Toy deleted successfully"})
}
