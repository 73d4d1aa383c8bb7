package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megapos_terminal/internal/models"
)

func TestNormalizeProductPascalCaseWins(t *testing.T) {
	p := NormalizeProduct(Record{
		"ProductID":     float64(7),
		"ProductName":   "Coffee",
		"productName":   "coffee-camel",
		"Price":         float64(45000),
		"StockQuantity": float64(25),
	})

	assert.Equal(t, "Coffee", p.Name)
	assert.Equal(t, "prod-007", p.ID)
	assert.Equal(t, 45000.0, p.Price)
	assert.Equal(t, 25, p.Stock)
}

func TestNormalizeProductCamelCaseFallback(t *testing.T) {
	// Un même enregistrement peut mélanger les deux conventions : la
	// résolution doit être champ par champ.
	p := NormalizeProduct(Record{
		"productID":     float64(12),
		"ProductName":   "Trà sữa",
		"sku":           "TS001",
		"price":         float64(55000),
		"StockQuantity": float64(30),
	})

	assert.Equal(t, "prod-012", p.ID)
	assert.Equal(t, "Trà sữa", p.Name)
	assert.Equal(t, "TS001", p.Barcode)
	assert.Equal(t, 55000.0, p.Price)
	assert.Equal(t, 30, p.Stock)
}

func TestNormalizeProductDefaults(t *testing.T) {
	p := NormalizeProduct(Record{})

	assert.Equal(t, "prod-000", p.ID)
	assert.Equal(t, "Produit sans nom", p.Name)
	assert.Equal(t, "Non classé", p.CategoryName)
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Stock)
	assert.Equal(t, PlaceholderImageURL, p.ImageURL)
	assert.True(t, p.IsActive)
}

func TestNormalizeProductImageFromDetail(t *testing.T) {
	p := NormalizeProduct(Record{
		"ProductID": float64(3),
		"ProductDetail": map[string]any{
			"ImageUrl": "https://cdn.example.com/p3.jpg",
		},
	})
	assert.Equal(t, "https://cdn.example.com/p3.jpg", p.ImageURL)

	// L'URL au niveau racine prime sur celle du détail.
	p = NormalizeProduct(Record{
		"imageUrl": "https://cdn.example.com/root.jpg",
		"ProductDetail": map[string]any{
			"imageUrl": "https://cdn.example.com/detail.jpg",
		},
	})
	assert.Equal(t, "https://cdn.example.com/root.jpg", p.ImageURL)
}

func TestNormalizeProductShelfLocation(t *testing.T) {
	p := NormalizeProduct(Record{
		"ProductID": float64(5),
		"ShelfLocation": map[string]any{
			"Zone":        "A",
			"aisleNumber": float64(3),
			"ShelfNumber": float64(2),
			"position":    "en haut à gauche",
		},
	})

	require.NotNil(t, p.Location)
	assert.Equal(t, "A", p.Location.Zone)
	assert.Equal(t, 3, p.Location.Aisle)
	assert.Equal(t, 2, p.Location.Shelf)
	assert.Equal(t, "en haut à gauche", p.Location.Position)

	// Absent du payload : nil, pas de struct vide.
	assert.Nil(t, NormalizeProduct(Record{"ProductID": float64(6)}).Location)
}

func TestNumericCoercionNeverPanics(t *testing.T) {
	cases := []Record{
		{"Price": "not-a-number"},
		{"Price": math.NaN()},
		{"Price": math.Inf(1)},
		{"Price": nil},
		{"Price": map[string]any{}},
		{"Price": "45000"},
	}
	for _, rec := range cases {
		p := NormalizeProduct(rec)
		assert.False(t, math.IsNaN(p.Price))
		assert.False(t, math.IsInf(p.Price, 0))
	}

	assert.Equal(t, 45000.0, NormalizeProduct(Record{"Price": "45000"}).Price)
}

func TestNormalizeProductNegativeStockClamped(t *testing.T) {
	p := NormalizeProduct(Record{"StockQuantity": float64(-4), "Price": float64(-10)})
	assert.Zero(t, p.Stock)
	assert.Zero(t, p.Price)
}

func TestProductBackendID(t *testing.T) {
	assert.Equal(t, 7, ProductBackendID("prod-007"))
	assert.Equal(t, 123, ProductBackendID("prod-123"))
	assert.Zero(t, ProductBackendID("garbage"))
}

func TestNormalizeCategory(t *testing.T) {
	c := NormalizeCategory(Record{
		"CategoryID":   float64(2),
		"categoryName": "Boissons",
		"IsActive":     false,
	})
	assert.Equal(t, 2, c.ID)
	assert.Equal(t, "Boissons", c.Name)
	assert.False(t, c.IsActive)

	empty := NormalizeCategory(Record{})
	assert.Equal(t, "Catégorie sans nom", empty.Name)
	assert.True(t, empty.IsActive)
}

func TestNormalizeOrder(t *testing.T) {
	o := NormalizeOrder(Record{
		"orderID":     float64(42),
		"userID":      float64(1),
		"totalAmount": float64(90000),
		"status":      "Shipping",
		"createdAt":   "2024-02-12T09:45:00Z",
		"orderItems": []any{
			map[string]any{
				"productID": float64(1),
				"quantity":  float64(2),
				"price":     float64(45000),
			},
		},
	})

	require.Len(t, o.Items, 1)
	assert.Equal(t, 42, o.ID)
	assert.Equal(t, "ORD-000042", o.OrderNumber)
	assert.Equal(t, models.OrderStatusShipping, o.Status)
	assert.Equal(t, 2, o.ItemsCount)
	assert.Equal(t, 45000.0, o.Items[0].Price)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestNormalizeOrderUnknownStatus(t *testing.T) {
	o := NormalizeOrder(Record{"OrderID": float64(1), "Status": "Teleported"})
	assert.Equal(t, models.OrderStatusPending, o.Status)
}

func TestNormalizeOrderItemUnitPriceFallback(t *testing.T) {
	// Les endpoints "from-items" renvoient unitPrice au lieu de price.
	o := NormalizeOrder(Record{
		"OrderID": float64(9),
		"orderDetails": []any{
			map[string]any{
				"productID": float64(4),
				"quantity":  float64(1),
				"unitPrice": float64(35000),
			},
		},
	})
	require.Len(t, o.Items, 1)
	assert.Equal(t, 35000.0, o.Items[0].Price)
}

func TestNormalizeUser(t *testing.T) {
	u := NormalizeUser(Record{
		"UserID":      float64(1),
		"FullName":    "Chương Nguyễn",
		"Email":       "chuong@megapos.app",
		"phoneNumber": "0915539311",
		"IsActive":    true,
	})
	assert.Equal(t, 1, u.UserID)
	assert.Equal(t, "Chương Nguyễn", u.FullName)
	assert.Equal(t, "0915539311", u.Phone)
	assert.False(t, u.IsGuest())
}
