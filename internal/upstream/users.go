package upstream

import (
	"context"
	"fmt"
	"net/http"

	"megapos_terminal/internal/dto"
	"megapos_terminal/internal/models"
)

type CreateUserInput struct {
	FullName    string `json:"FullName"`
	Email       string `json:"Email"`
	Password    string `json:"Password"`
	PhoneNumber string `json:"PhoneNumber,omitempty"`
}

type UpdateUserInput struct {
	FullName    *string `json:"FullName,omitempty"`
	PhoneNumber *string `json:"PhoneNumber,omitempty"`
	IsActive    *bool   `json:"IsActive,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context) ([]models.UserAccount, error) {
	var recs []dto.Record
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &recs); err != nil {
		return nil, err
	}
	return dto.NormalizeUsers(recs), nil
}

func (c *Client) GetUser(ctx context.Context, id int) (models.UserAccount, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &rec); err != nil {
		return models.UserAccount{}, err
	}
	return dto.NormalizeUser(rec), nil
}

func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (models.UserAccount, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodPost, "/api/users", in, &rec); err != nil {
		return models.UserAccount{}, err
	}
	return dto.NormalizeUser(rec), nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, in UpdateUserInput) (models.UserAccount, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), in, &rec); err != nil {
		return models.UserAccount{}, err
	}
	return dto.NormalizeUser(rec), nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}

// FaceLogin soumet le descripteur facial capturé par le widget de scan.
// Le backend renvoie l'utilisateur reconnu, ou un rejet si aucun ne matche.
func (c *Client) FaceLogin(ctx context.Context, descriptor []float64, imageData string) (models.UserAccount, error) {
	body := map[string]any{"faceDescriptor": descriptor}
	if imageData != "" {
		body["imageData"] = imageData
	}
	var rec dto.Record
	if err := c.do(ctx, http.MethodPost, "/api/users/face-login", body, &rec); err != nil {
		return models.UserAccount{}, err
	}
	return dto.NormalizeUser(rec), nil
}
