package upstream

import (
	"context"
	"fmt"
	"net/http"

	"megapos_terminal/internal/dto"
	"megapos_terminal/internal/models"
)

type CreateCategoryInput struct {
	CategoryName     string `json:"CategoryName"`
	Description      string `json:"Description,omitempty"`
	ParentCategoryID int    `json:"ParentCategoryID,omitempty"`
}

type UpdateCategoryInput struct {
	CategoryName string `json:"CategoryName,omitempty"`
	Description  string `json:"Description,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var recs []dto.Record
	if err := c.do(ctx, http.MethodGet, "/api/Categories", nil, &recs); err != nil {
		return nil, err
	}
	return dto.NormalizeCategories(recs), nil
}

func (c *Client) CreateCategory(ctx context.Context, in CreateCategoryInput) (models.Category, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodPost, "/api/Categories", in, &rec); err != nil {
		return models.Category{}, err
	}
	return dto.NormalizeCategory(rec), nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, in UpdateCategoryInput) (models.Category, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/Categories/%d", id), in, &rec); err != nil {
		return models.Category{}, err
	}
	return dto.NormalizeCategory(rec), nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/Categories/%d", id), nil, nil)
}
