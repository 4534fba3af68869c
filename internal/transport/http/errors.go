package http

import (
	"encoding/json"
	"net/http"

	"github.com/kahvecikaan/toyshop/internal/domain"
)

// ErrorCode identifies the failure scenario of an error response
type ErrorCode string

const (
	CodeGetError            ErrorCode = "GET_ERROR"
	CodeSearchError         ErrorCode = "SEARCH_ERROR"
	CodeSearchNotFound      ErrorCode = "SEARCH_NOT_FOUND"
	CodeDeleteError         ErrorCode = "DELETE_ERROR"
	CodeAddError            ErrorCode = "ADD_ERROR"
	CodeUpdateError         ErrorCode = "UPDATE_ERROR"
	CodeToyNotFound         ErrorCode = "TOY_NOT_FOUND"
	CodeReplaceError        ErrorCode = "REPLACE_ERROR"
	CodeCategoryAddError    ErrorCode = "CATEGORY_ADD_ERROR"
	CodeCategoryExists      ErrorCode = "CATEGORY_EXISTS"
	CodeCategoryNotFound    ErrorCode = "CATEGORY_NOT_FOUND"
	CodeCategoryDeleteError ErrorCode = "CATEGORY_DELETE_ERROR"
	CodeInvalidQuery        ErrorCode = "INVALID_QUERY"
	CodeSlugExists          ErrorCode = "SLUG_EXISTS"
	CodeValidationError     ErrorCode = "VALIDATION_ERROR"
)

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`

	// Machine-readable failure scenario
	//
	// required: true
	Code ErrorCode `json:"code"`

	// The underlying error, set on internal failures
	Detail string `json:"error,omitempty"`

	// Field-level problems, set on validation failures
	Errors domain.ValidationErrors `json:"errors,omitempty"`
}

// MessageResponse wraps the result of a mutating operation
//
// swagger:model
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, &ErrorResponse{Message: message, Code: code})
}

// writeInternalError reports err as a 500 with its message attached
func writeInternalError(w http.ResponseWriter, code ErrorCode, message string, err error) {
	writeJSON(w, http.StatusInternalServerError, &ErrorResponse{
		Message: message,
		Code:    code,
		Detail:  err.Error(),
	})
}

func writeValidationError(w http.ResponseWriter, message string, errs domain.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, &ErrorResponse{
		Message: message,
		Code:    CodeValidationError,
		Errors:  errs,
	})
}
