package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megapos_terminal/internal/models"
)

type fakeSource struct {
	products []models.Product
	err      error
}

func (f *fakeSource) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func demo() []models.Product {
	return []models.Product{
		{ID: "prod-001", Name: "Cà phê latte", Barcode: "CF001", Price: 45000, Stock: 25, CategoryName: "Cafe"},
		{ID: "prod-002", Name: "Trà sữa trân châu", Barcode: "TS001", Price: 55000, Stock: 30, CategoryName: "Trà sữa"},
		{ID: "prod-003", Name: "Sandwich gà nướng", Barcode: "SW001", Price: 60000, Stock: 12, CategoryName: "Đồ ăn nhanh"},
	}
}

func TestRefreshReplacesWholesale(t *testing.T) {
	src := &fakeSource{products: demo()}
	c := New(src, nil)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Len(t, c.Products(), 3)

	// Le rafraîchissement suivant remplace tout, y compris les projections
	// locales de stock.
	c.DecrementStock("prod-001", 5)
	src.products = demo()[:1]
	require.NoError(t, c.Refresh(context.Background()))

	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, 25, products[0].Stock)
}

func TestRefreshFailureKeepsState(t *testing.T) {
	src := &fakeSource{products: demo()}
	c := New(src, nil)
	require.NoError(t, c.Refresh(context.Background()))

	src.err = errors.New("backend down")
	require.Error(t, c.Refresh(context.Background()))
	assert.Len(t, c.Products(), 3)
}

func TestFilter(t *testing.T) {
	c := New(&fakeSource{products: demo()}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	assert.Len(t, c.Filter("", "all"), 3)
	assert.Len(t, c.Filter("trà", ""), 1)
	assert.Len(t, c.Filter("", "Cafe"), 1)
	assert.Empty(t, c.Filter("pizza", ""))

	// Le code-barres se compare tel que saisi, pas replié en minuscules.
	assert.Len(t, c.Filter("SW001", ""), 1)
	assert.Len(t, c.Filter("SW0", ""), 1)
}

func TestFilterBarcodeKeepsCase(t *testing.T) {
	c := New(&fakeSource{products: demo()}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	// Un terme majuscule doit matcher un code-barres majuscule même si le
	// repli en minuscules du nom ne matche rien.
	results := c.Filter("CF001", "")
	require.Len(t, results, 1)
	assert.Equal(t, "prod-001", results[0].ID)
}

func TestCategoriesDistinct(t *testing.T) {
	products := append(demo(), models.Product{ID: "prod-004", Name: "Espresso", CategoryName: "Cafe"})
	c := New(&fakeSource{products: products}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, []string{"Cafe", "Trà sữa", "Đồ ăn nhanh"}, c.Categories())
}

func TestDecrementStockFloorsAtZero(t *testing.T) {
	c := New(&fakeSource{products: demo()}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	c.DecrementStock("prod-003", 100)
	p, ok := c.Find("prod-003")
	require.True(t, ok)
	assert.Zero(t, p.Stock)

	// Produit inconnu : no-op.
	c.DecrementStock("prod-999", 1)
}
