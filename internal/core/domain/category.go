package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// Category groups inventory items for filtering and analytics.
type Category struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"category_name" bson:"category_name"`
}
