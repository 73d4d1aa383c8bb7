// Package catalog maintient la copie locale du catalogue produits. Elle est
// rafraîchie en bloc depuis le backend, seul détenteur de la vérité : la
// décrémentation de stock après checkout n'est qu'une projection d'affichage
// optimiste, réconciliée au prochain Refresh.
package catalog

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"megapos_terminal/internal/models"
)

const (
	cacheKey = "catalog:all"
	cacheTTL = 30 * time.Minute
)

// Source liste les produits depuis le backend.
type Source interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type Catalog struct {
	mu       sync.RWMutex
	products []models.Product

	source Source
	redis  *redis.Client // nil accepté : pas de cache de démarrage
}

func New(source Source, rdb *redis.Client) *Catalog {
	return &Catalog{source: source, redis: rdb}
}

// Refresh remplace le catalogue entier par la liste backend et met à jour le
// cache Redis. En cas d'échec, l'état courant est conservé tel quel.
func (c *Catalog) Refresh(ctx context.Context) error {
	products, err := c.source.ListProducts(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	if c.redis != nil {
		if raw, err := json.Marshal(products); err == nil {
			if err := c.redis.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
				log.Printf("⚠️ Cache catalogue non écrit: %v", err)
			}
		}
	}
	return nil
}

// WarmStart recharge le dernier instantané depuis Redis pour afficher un
// catalogue avant le premier Refresh. Best effort.
func (c *Catalog) WarmStart(ctx context.Context) bool {
	if c.redis == nil {
		return false
	}
	raw, err := c.redis.Get(ctx, cacheKey).Result()
	if err != nil || raw == "" {
		return false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return false
	}
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	return true
}

// Products retourne une copie de la liste courante.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find retrouve un produit par identifiant d'affichage.
func (c *Catalog) Find(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Filter applique la recherche de la caisse : sous-chaîne du nom (insensible
// à la casse) ou code-barres, puis filtre catégorie ("" ou "all" = toutes).
func (c *Catalog) Filter(term, category string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Le nom se compare en minuscules, le code-barres tel que saisi.
	name := strings.ToLower(term)
	out := []models.Product{}
	for _, p := range c.products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), name) &&
			!strings.Contains(p.Barcode, term) {
			continue
		}
		if category != "" && category != "all" && p.CategoryName != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories extrait les noms de catégories distincts, dans l'ordre du
// catalogue.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := map[string]bool{}
	out := []string{}
	for _, p := range c.products {
		if p.CategoryName == "" || seen[p.CategoryName] {
			continue
		}
		seen[p.CategoryName] = true
		out = append(out, p.CategoryName)
	}
	return out
}

// DecrementStock applique la projection optimiste après une commande
// confirmée. Plancher à zéro, jamais négatif.
func (c *Catalog) DecrementStock(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID != productID {
			continue
		}
		c.products[i].Stock -= quantity
		if c.products[i].Stock < 0 {
			c.products[i].Stock = 0
		}
		return
	}
}
