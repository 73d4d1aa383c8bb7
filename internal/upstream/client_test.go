package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megapos_terminal/internal/models"
)

func TestListProductsNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// Casse mélangée volontairement : le client doit normaliser.
		w.Write([]byte(`[
			{"ProductID": 1, "ProductName": "Cà phê latte", "price": 45000, "StockQuantity": 25},
			{"productID": 2, "productName": "Trà sữa", "Price": 55000, "stockQuantity": 30}
		]`))
	}))
	defer srv.Close()

	products, err := New(srv.URL).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "prod-001", products[0].ID)
	assert.Equal(t, 45000.0, products[0].Price)
	assert.Equal(t, "prod-002", products[1].ID)
	assert.Equal(t, 30, products[1].Stock)
}

func TestConnectivityErrorIsUnreachable(t *testing.T) {
	// Port fermé : l'erreur doit être distinguable d'un rejet métier.
	c := New("http://127.0.0.1:1")
	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))
}

func TestBackendRejectionKeepsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "SKU déjà utilisé"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateProduct(context.Background(), CreateProductInput{ProductName: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "SKU déjà utilisé", apiErr.Error())
}

func TestBackendRejectionGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteProduct(context.Background(), 3)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Error(), "500")
}

func TestCreateOrderFromItemsPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/user/1/from-items", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"orderID": 42, "userID": 1, "totalAmount": 90000, "status": "Pending"}`))
	}))
	defer srv.Close()

	req := models.CreateOrderRequest{
		Items:             []models.CreateOrderItem{{ProductID: "prod-001", Quantity: 2, Price: 45000}},
		TotalAmount:       90000,
		PaymentMethod:     models.PaymentCash,
		FulfillmentMethod: models.FulfillmentPickup,
		IdempotencyKey:    "11111111-2222-3333-4444-555555555555",
	}
	order, err := New(srv.URL).CreateOrderFromItems(context.Background(), 1, req)
	require.NoError(t, err)

	assert.Equal(t, 42, order.ID)
	assert.Equal(t, "ORD-000042", order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// La clé d'idempotence doit partir sur le fil.
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", got["idempotencyKey"])
	assert.Equal(t, "cash", got["paymentMethod"])
	assert.Equal(t, "pickup", got["fulfillmentMethod"])
	assert.Nil(t, got["deliveryInfo"])
}

func TestUpdateOrderStatusBody(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/7/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).UpdateOrderStatus(context.Background(), 7, models.OrderStatusShipping))
	assert.Equal(t, "shipping", got["status"])
}
