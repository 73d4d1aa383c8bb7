package models

import "time"

type Product struct {
	ID           string         `json:"id"`
	CategoryID   int            `json:"category_id,omitempty"`
	CategoryName string         `json:"category"`
	Name         string         `json:"name"`
	Barcode      string         `json:"barcode"`
	Price        float64        `json:"price"`
	Stock        int            `json:"stock"`
	ImageURL     string         `json:"image_url"`
	Location     *ShelfLocation `json:"location,omitempty"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at,omitempty"`
}

// ShelfLocation indique où le produit se trouve physiquement en magasin.
type ShelfLocation struct {
	Zone     string `json:"zone"`
	Aisle    int    `json:"aisle_number"`
	Shelf    int    `json:"shelf_number"`
	Position string `json:"position"`
}
