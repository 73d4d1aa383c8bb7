package upstream

import (
	"context"
	"fmt"
	"net/http"

	"megapos_terminal/internal/dto"
	"megapos_terminal/internal/models"
)

// CreateProductInput est le DTO PascalCase attendu par le backend.
type CreateProductInput struct {
	CategoryID       int     `json:"CategoryID"`
	ProductName      string  `json:"ProductName"`
	SKU              string  `json:"SKU"`
	Price            float64 `json:"Price"`
	StockQuantity    int     `json:"StockQuantity"`
	ShortDescription string  `json:"ShortDescription,omitempty"`
	FullDescription  string  `json:"FullDescription,omitempty"`
	ImageUrl         string  `json:"ImageUrl,omitempty"`
}

type UpdateProductInput struct {
	ProductName   *string  `json:"ProductName,omitempty"`
	Price         *float64 `json:"Price,omitempty"`
	StockQuantity *int     `json:"StockQuantity,omitempty"`
	IsActive      *bool    `json:"IsActive,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var recs []dto.Record
	if err := c.do(ctx, http.MethodGet, "/api/Products", nil, &recs); err != nil {
		return nil, err
	}
	return dto.NormalizeProducts(recs), nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (models.Product, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &rec); err != nil {
		return models.Product{}, err
	}
	return dto.NormalizeProduct(rec), nil
}

func (c *Client) GetProductByBarcode(ctx context.Context, barcode string) (models.Product, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodGet, "/api/products/barcode/"+barcode, nil, &rec); err != nil {
		return models.Product{}, err
	}
	return dto.NormalizeProduct(rec), nil
}

func (c *Client) ListProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	var recs []dto.Record
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/category/%d", categoryID), nil, &recs); err != nil {
		return nil, err
	}
	return dto.NormalizeProducts(recs), nil
}

func (c *Client) CreateProduct(ctx context.Context, in CreateProductInput) (models.Product, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodPost, "/api/products", in, &rec); err != nil {
		return models.Product{}, err
	}
	return dto.NormalizeProduct(rec), nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in UpdateProductInput) (models.Product, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/Products/%d", id), in, &rec); err != nil {
		return models.Product{}, err
	}
	return dto.NormalizeProduct(rec), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// UpdateProductStock fixe la quantité en stock. Le corps est la quantité nue,
// comme l'attend le backend.
func (c *Client) UpdateProductStock(ctx context.Context, id, quantity int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/products/%d/stock", id), quantity, nil)
}
