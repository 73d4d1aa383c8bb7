package upstream

import (
	"context"
	"fmt"
	"net/http"

	"megapos_terminal/internal/dto"
	"megapos_terminal/internal/models"
)

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var recs []dto.Record
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &recs); err != nil {
		return nil, err
	}
	return dto.NormalizeOrders(recs), nil
}

func (c *Client) GetOrder(ctx context.Context, id int) (models.Order, error) {
	var rec dto.Record
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &rec); err != nil {
		return models.Order{}, err
	}
	return dto.NormalizeOrder(rec), nil
}

func (c *Client) ListUserOrders(ctx context.Context, userID int) ([]models.Order, error) {
	var recs []dto.Record
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/user/%d", userID), nil, &recs); err != nil {
		return nil, err
	}
	return dto.NormalizeOrders(recs), nil
}

// CreateOrderFromItems est l'unique événement "la commande existe" : rien
// n'est persisté côté backend avant cet appel.
func (c *Client) CreateOrderFromItems(ctx context.Context, userID int, req models.CreateOrderRequest) (models.Order, error) {
	var rec dto.Record
	path := fmt.Sprintf("/api/orders/user/%d/from-items", userID)
	if err := c.do(ctx, http.MethodPost, path, req, &rec); err != nil {
		return models.Order{}, err
	}
	return dto.NormalizeOrder(rec), nil
}

// UpdateOrderStatus ne porte aucun effet secondaire côté terminal : en
// particulier, annuler une commande ne restitue pas le stock (la projection
// locale est réconciliée au prochain rafraîchissement du catalogue).
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", id), body, nil)
}
