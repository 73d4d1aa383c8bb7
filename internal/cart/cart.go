// Package cart implémente le panier du terminal. Une seule entrée par
// produit, quantité plafonnée par le stock capturé sur le produit au moment
// de l'ajout. Toutes les opérations sont totales : une entrée invalide est
// absorbée par clamping, jamais rejetée.
//
// Le panier n'est pas synchronisé : il appartient exclusivement à la session
// du terminal, qui sérialise ses accès.
package cart

import "megapos_terminal/internal/models"

type Cart struct {
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add insère le produit avec quantité 1, ou incrémente de 1 si déjà présent.
// Le plafond est le stock porté par le produit passé en argument — le stock
// courant du catalogue, pas celui capturé au premier ajout. Au plafond,
// l'ajout est ignoré silencieusement.
func (c *Cart) Add(p models.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			if c.items[i].Quantity < p.Stock {
				c.items[i].Quantity++
			}
			c.items[i].Product = p
			return
		}
	}
	if p.Stock < 1 {
		return
	}
	c.items = append(c.items, models.CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity applique un delta avec clamping : jamais sous 1 (descendre à
// zéro est un no-op, la suppression est une action explicite), jamais
// au-dessus du stock.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		next := c.items[i].Quantity + delta
		if next <= 0 || next > c.items[i].Product.Stock {
			return
		}
		c.items[i].Quantity = next
		return
	}
}

// Remove supprime l'entrée entièrement.
func (c *Cart) Remove(productID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items retourne une copie superficielle des lignes, dans l'ordre d'insertion.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Snapshot produit des copies profondes des lignes : les mutations
// ultérieures du panier ou du catalogue ne peuvent pas altérer un montant
// déjà en cours de soumission.
func (c *Cart) Snapshot() []models.CartItem {
	out := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		p := item.Product
		if p.Location != nil {
			loc := *p.Location
			p.Location = &loc
		}
		out = append(out, models.CartItem{Product: p, Quantity: item.Quantity})
	}
	return out
}

// TotalAmount recalcule la somme prix × quantité à chaque appel, sans cache.
func (c *Cart) TotalAmount() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems est la somme des quantités.
func (c *Cart) TotalItems() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}
