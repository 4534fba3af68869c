// Package classification of Toy Catalog API
//
// # Documentation for Toy Catalog API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import (
	_ "embed"
	"net/http"

	"github.com/kahvecikaan/toyshop/internal/domain"
)

//go:embed openapi.yaml
var openAPIDocument []byte

func serveOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(openAPIDocument)
}

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Error with a machine-readable code
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in: body
	Body ErrorResponse
}

// A list of toys
// swagger:response toysResponse
type toysResponseWrapper struct {
	// in: body
	Body []domain.Toy
}

// A single toy
// swagger:response toyResponse
type toyResponseWrapper struct {
	// in: body
	Body domain.Toy
}

// Outcome of a toy mutation
// swagger:response toyMessageResponse
type toyMessageResponseWrapper struct {
	// in: body
	Body struct {
		Message string     `json:"message"`
		Data    domain.Toy `json:"data"`
	}
}

// A bare confirmation message
// swagger:response messageResponse
type messageResponseWrapper struct {
	// in: body
	Body MessageResponse
}

// A list of categories
// swagger:response categoriesResponse
type categoriesResponseWrapper struct {
	// in: body
	Body []domain.Category
}

// A single category
// swagger:response categoryResponse
type categoryResponseWrapper struct {
	// in: body
	Body domain.Category
}

// swagger:parameters updateToy replaceToy deleteToy uploadToyImage
type toyIDParamsWrapper struct {
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:parameters getToyBySlug getCategoryToys
type slugParamsWrapper struct {
	// in: path
	// required: true
	Slug string `json:"slug"`
}

// swagger:parameters listToysByCategory
type categoryIDParamsWrapper struct {
	// in: path
	// required: true
	CategoryID string `json:"categoryId"`
}

// swagger:parameters searchToys
type searchParamsWrapper struct {
	// in: query
	// required: true
	Q string `json:"q"`
}

// swagger:parameters addToy
type createToyParamsWrapper struct {
	// in: body
	// required: true
	Body domain.CreateToyRequest
}

// swagger:parameters updateToy
type updateToyParamsWrapper struct {
	// in: body
	// required: true
	Body domain.UpdateToyRequest
}

// swagger:parameters replaceToy
type replaceToyParamsWrapper struct {
	// in: body
	// required: true
	Body domain.ReplaceToyRequest
}

// swagger:parameters addCategory
type createCategoryParamsWrapper struct {
	// in: body
	// required: true
	Body domain.CreateCategoryRequest
}

// swagger:parameters uploadToyImage
type imageFilenameParamsWrapper struct {
	// in: path
	// required: true
	Filename string `json:"filename"`
}
