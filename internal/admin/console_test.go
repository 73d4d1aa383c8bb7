package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megapos_terminal/internal/upstream"
)

// fakeBackend simule le backend e-commerce pour la console. Il compte les
// GET de liste pour vérifier la politique "mutation réussie = rechargement
// complet".
type fakeBackend struct {
	mux          *http.ServeMux
	productLists atomic.Int32
	orderLists   atomic.Int32
	failProducts atomic.Bool
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{mux: http.NewServeMux()}

	b.mux.HandleFunc("GET /api/Products", func(w http.ResponseWriter, r *http.Request) {
		b.productLists.Add(1)
		if b.failProducts.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "base indisponible"})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"ProductID": 1, "ProductName": "Cà phê latte", "Price": 45000, "StockQuantity": 25},
			{"productID": 2, "productName": "Trà sữa trân châu", "price": 52000, "stockQuantity": 18},
		})
	})
	b.mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ProductID": 3, "ProductName": "Nouveau"})
	})
	b.mux.HandleFunc("PUT /api/Products/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ProductID": 1})
	})
	b.mux.HandleFunc("DELETE /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	b.mux.HandleFunc("PATCH /api/products/{id}/stock", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	b.mux.HandleFunc("GET /api/Categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"CategoryID": 1, "CategoryName": "Đồ uống"},
		})
	})
	b.mux.HandleFunc("POST /api/Categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"CategoryID": 2})
	})

	b.mux.HandleFunc("GET /api/orders", func(w http.ResponseWriter, r *http.Request) {
		b.orderLists.Add(1)
		json.NewEncoder(w).Encode([]map[string]any{
			{"OrderID": 7, "OrderNumber": "ORD-000007", "Status": "Pending", "TotalAmount": 90000},
		})
	})
	b.mux.HandleFunc("PATCH /api/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["status"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	b.mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"UserID": 1, "FullName": "Lan Nguyễn", "Email": "lan@gmail.com"},
		})
	})
	b.mux.HandleFunc("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"UserID": 2})
	})
	b.mux.HandleFunc("PUT /api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"UserID": 1})
	})
	b.mux.HandleFunc("DELETE /api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return b
}

func newConsoleRig(t *testing.T) (*Console, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.mux)
	t.Cleanup(srv.Close)
	return NewConsole(upstream.New(srv.URL)), backend
}

func TestLoadProductsReplacesCollection(t *testing.T) {
	console, _ := newConsoleRig(t)

	require.NoError(t, console.LoadProducts(context.Background()))
	products := console.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "prod-001", products[0].ID)
	assert.Equal(t, "Trà sữa trân châu", products[1].Name)
}

func TestLoadProductsFailureEmptiesCollection(t *testing.T) {
	console, backend := newConsoleRig(t)

	require.NoError(t, console.LoadProducts(context.Background()))
	require.NotEmpty(t, console.Products())

	// L'échec ne laisse pas l'ancienne liste affichée comme fraîche.
	backend.failProducts.Store(true)
	require.Error(t, console.LoadProducts(context.Background()))
	assert.Empty(t, console.Products())
}

func TestSaveProductReloadsList(t *testing.T) {
	console, backend := newConsoleRig(t)

	err := console.SaveProduct(context.Background(), 0, ProductForm{Name: "Nouveau", Price: 30000, Stock: 5})
	require.NoError(t, err)
	assert.Equal(t, int32(1), backend.productLists.Load())

	err = console.SaveProduct(context.Background(), 1, ProductForm{Name: "Renommé", Price: 46000, Stock: 20})
	require.NoError(t, err)
	assert.Equal(t, int32(2), backend.productLists.Load())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	console, backend := newConsoleRig(t)

	err := console.DeleteProduct(context.Background(), 1, false)
	require.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Equal(t, int32(0), backend.productLists.Load())

	require.NoError(t, console.DeleteProduct(context.Background(), 1, true))
	assert.Equal(t, int32(1), backend.productLists.Load())

	require.ErrorIs(t, console.DeleteCategory(context.Background(), 1, false), ErrConfirmationRequired)
	require.ErrorIs(t, console.DeleteUser(context.Background(), 1, false), ErrConfirmationRequired)
}

func TestUpdateProductStockClampsNegative(t *testing.T) {
	console, _ := newConsoleRig(t)
	require.NoError(t, console.UpdateProductStock(context.Background(), 1, -4))
}

func TestUpdateOrderStatusValidatesEnum(t *testing.T) {
	console, backend := newConsoleRig(t)

	err := console.UpdateOrderStatus(context.Background(), 7, "archived")
	require.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, int32(0), backend.orderLists.Load())

	require.NoError(t, console.UpdateOrderStatus(context.Background(), 7, "cancelled"))
	assert.Equal(t, int32(1), backend.orderLists.Load())
}

func TestLoadOrdersNormalizesStatus(t *testing.T) {
	console, _ := newConsoleRig(t)

	require.NoError(t, console.LoadOrders(context.Background()))
	orders := console.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "pending", string(orders[0].Status))
	assert.Equal(t, "ORD-000007", orders[0].OrderNumber)
}

func TestSaveUserCreateThenUpdate(t *testing.T) {
	console, _ := newConsoleRig(t)

	require.NoError(t, console.SaveUser(context.Background(), 0, UserForm{FullName: "Minh Trần", Email: "minh@gmail.com", Password: "secret"}))
	require.Len(t, console.Users(), 1)

	active := false
	require.NoError(t, console.SaveUser(context.Background(), 1, UserForm{FullName: "Minh Trần", IsActive: &active}))
}

func TestSaveCategoryReloads(t *testing.T) {
	console, _ := newConsoleRig(t)

	require.NoError(t, console.SaveCategory(context.Background(), 0, CategoryForm{Name: "Đồ ăn vặt"}))
	categories := console.Categories()
	require.Len(t, categories, 1)
	assert.Equal(t, "Đồ uống", categories[0].Name)
}
