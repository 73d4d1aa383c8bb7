package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megapos_terminal/internal/models"
)

func latte() models.Product {
	return models.Product{ID: "prod-001", Name: "Cà phê latte", Price: 45000, Stock: 3}
}

func sandwich() models.Product {
	return models.Product{ID: "prod-003", Name: "Sandwich gà nướng", Price: 60000, Stock: 12}
}

func TestAddInsertsThenIncrements(t *testing.T) {
	c := New()
	c.Add(latte())

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.Add(latte())
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestAddCappedAtStock(t *testing.T) {
	c := New()
	p := latte() // stock 3
	for i := 0; i < 10; i++ {
		c.Add(p)
	}
	assert.Equal(t, 3, c.Items()[0].Quantity)
}

func TestAddCapFollowsCurrentStock(t *testing.T) {
	c := New()
	p := latte() // stock 3
	for i := 0; i < 3; i++ {
		c.Add(p)
	}
	require.Equal(t, 3, c.Items()[0].Quantity)

	// Après un réapprovisionnement, le plafond est le stock du produit
	// repassé à l'ajout, pas celui figé à la première insertion.
	p.Stock = 5
	c.Add(p)
	assert.Equal(t, 4, c.Items()[0].Quantity)
	assert.Equal(t, 5, c.Items()[0].Product.Stock)

	// L'inverse aussi : un stock redescendu bloque l'incrément.
	p.Stock = 4
	c.Add(p)
	assert.Equal(t, 4, c.Items()[0].Quantity)
}

func TestAddOutOfStockProductIgnored(t *testing.T) {
	c := New()
	p := latte()
	p.Stock = 0
	c.Add(p)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantityClamps(t *testing.T) {
	c := New()
	c.Add(latte())

	// Descendre à zéro est un no-op, pas une suppression.
	c.UpdateQuantity("prod-001", -1)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.UpdateQuantity("prod-001", 2)
	assert.Equal(t, 3, c.Items()[0].Quantity)

	// Au-delà du stock : absorbé.
	c.UpdateQuantity("prod-001", 1)
	assert.Equal(t, 3, c.Items()[0].Quantity)

	// Produit absent : no-op.
	c.UpdateQuantity("prod-999", 1)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(latte())
	c.Add(sandwich())

	c.Remove("prod-001")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "prod-003", c.Items()[0].Product.ID)
}

func TestTotalsRecomputedFresh(t *testing.T) {
	c := New()
	c.Add(latte())
	c.Add(latte())
	c.Add(sandwich())

	assert.Equal(t, 150000.0, c.TotalAmount())
	assert.Equal(t, 3, c.TotalItems())

	// Une lecture intermédiaire ne doit introduire aucune dérive de cache.
	_ = c.Items()
	assert.Equal(t, 150000.0, c.TotalAmount())

	c.UpdateQuantity("prod-003", 1)
	assert.Equal(t, 210000.0, c.TotalAmount())
	assert.Equal(t, 4, c.TotalItems())
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := New()
	c.Add(latte())
	c.Add(latte())

	snap := c.Snapshot()
	c.UpdateQuantity("prod-001", 1)
	c.Clear()

	require.Len(t, snap, 1)
	assert.Equal(t, 2, snap[0].Quantity)
	assert.Equal(t, 45000.0, snap[0].Product.Price)
}
