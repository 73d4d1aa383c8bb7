package models

type Category struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ParentCategoryID int    `json:"parent_category_id,omitempty"`
	IsActive         bool   `json:"is_active"`
}
