package domain

import "time"

// Category groups toys under a unique slug
//
// swagger:model
type Category struct {
	// The ID of the category, assigned by the store
	//
	// example: 1
	ID uint `json:"id" gorm:"primaryKey"`

	// The display name of the category
	//
	// required: true
	// min length: 3
	// example: Action Figure
	Name string `json:"name" gorm:"size:255;not null"`

	// URL-safe unique identifier of the category
	//
	// example: action-figure
	Slug string `json:"slug" gorm:"size:255;not null;uniqueIndex"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
}
