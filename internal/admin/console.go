// Package admin orchestre les écrans CRUD de la console : produits,
// catégories, commandes (statut seulement) et utilisateurs. Chaque ressource
// suit le même cycle : list() remplace la collection locale en bloc, toute
// mutation réussie déclenche un rechargement complet plutôt qu'un patch local
// (les champs calculés par le backend — numéros de commande, compteurs —
// restent ainsi cohérents), et les échecs remontent en message visible sans
// retry automatique.
package admin

import (
	"context"
	"errors"
	"sync"

	"megapos_terminal/internal/models"
	"megapos_terminal/internal/upstream"
)

// ErrConfirmationRequired bloque une suppression tant que l'opérateur n'a pas
// confirmé explicitement.
var ErrConfirmationRequired = errors.New("confirmation de l'opérateur requise")

// ErrUnknownStatus rejette un statut hors de l'énumération fixe.
var ErrUnknownStatus = errors.New("statut de commande inconnu")

type Console struct {
	api *upstream.Client

	mu         sync.Mutex
	products   []models.Product
	categories []models.Category
	orders     []models.Order
	users      []models.UserAccount
}

func NewConsole(api *upstream.Client) *Console {
	return &Console{api: api}
}

// --- Produits ---

// ProductForm est la saisie camelCase du formulaire produit, traduite vers le
// DTO PascalCase du backend au moment de l'envoi.
type ProductForm struct {
	Name             string  `json:"name"`
	Barcode          string  `json:"barcode"`
	Price            float64 `json:"price"`
	Stock            int     `json:"stock"`
	CategoryID       int     `json:"categoryID"`
	ImageURL         string  `json:"imageUrl"`
	ShortDescription string  `json:"shortDescription"`
	FullDescription  string  `json:"fullDescription"`
}

// LoadProducts remplace la collection locale. En cas d'échec elle redevient
// vide : jamais de données périmées affichées comme fraîches.
func (c *Console) LoadProducts(ctx context.Context) error {
	products, err := c.api.ListProducts(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.products = nil
		return err
	}
	c.products = products
	return nil
}

func (c *Console) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// SaveProduct crée (id 0) ou met à jour, puis recharge la liste entière.
func (c *Console) SaveProduct(ctx context.Context, id int, form ProductForm) error {
	var err error
	if id == 0 {
		categoryID := form.CategoryID
		if categoryID == 0 {
			categoryID = 1 // catégorie par défaut du backend
		}
		_, err = c.api.CreateProduct(ctx, upstream.CreateProductInput{
			CategoryID:       categoryID,
			ProductName:      form.Name,
			SKU:              form.Barcode,
			Price:            form.Price,
			StockQuantity:    form.Stock,
			ShortDescription: form.ShortDescription,
			FullDescription:  form.FullDescription,
			ImageUrl:         form.ImageURL,
		})
	} else {
		_, err = c.api.UpdateProduct(ctx, id, upstream.UpdateProductInput{
			ProductName:   &form.Name,
			Price:         &form.Price,
			StockQuantity: &form.Stock,
		})
	}
	if err != nil {
		return err
	}
	return c.LoadProducts(ctx)
}

// DeleteProduct exige la confirmation explicite de l'opérateur avant l'appel.
func (c *Console) DeleteProduct(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := c.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return c.LoadProducts(ctx)
}

func (c *Console) UpdateProductStock(ctx context.Context, id, quantity int) error {
	if quantity < 0 {
		quantity = 0
	}
	if err := c.api.UpdateProductStock(ctx, id, quantity); err != nil {
		return err
	}
	return c.LoadProducts(ctx)
}

// --- Catégories ---

type CategoryForm struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID int    `json:"parentCategoryID"`
}

func (c *Console) LoadCategories(ctx context.Context) error {
	categories, err := c.api.ListCategories(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.categories = nil
		return err
	}
	c.categories = categories
	return nil
}

func (c *Console) Categories() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Console) SaveCategory(ctx context.Context, id int, form CategoryForm) error {
	var err error
	if id == 0 {
		_, err = c.api.CreateCategory(ctx, upstream.CreateCategoryInput{
			CategoryName:     form.Name,
			Description:      form.Description,
			ParentCategoryID: form.ParentCategoryID,
		})
	} else {
		_, err = c.api.UpdateCategory(ctx, id, upstream.UpdateCategoryInput{
			CategoryName: form.Name,
			Description:  form.Description,
		})
	}
	if err != nil {
		return err
	}
	return c.LoadCategories(ctx)
}

func (c *Console) DeleteCategory(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := c.api.DeleteCategory(ctx, id); err != nil {
		return err
	}
	return c.LoadCategories(ctx)
}

// --- Commandes (statut seulement) ---

func (c *Console) LoadOrders(ctx context.Context) error {
	orders, err := c.api.ListOrders(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.orders = nil
		return err
	}
	c.orders = orders
	return nil
}

func (c *Console) Orders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// UpdateOrderStatus pousse un statut de l'énumération fixe puis recharge.
// Annuler une commande ne restitue pas le stock : la projection locale du
// catalogue est réconciliée par son prochain rafraîchissement.
func (c *Console) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	if !models.IsValidOrderStatus(status) {
		return ErrUnknownStatus
	}
	if err := c.api.UpdateOrderStatus(ctx, id, models.OrderStatus(status)); err != nil {
		return err
	}
	return c.LoadOrders(ctx)
}

// --- Utilisateurs ---

type UserForm struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	IsActive    *bool  `json:"isActive"`
}

func (c *Console) LoadUsers(ctx context.Context) error {
	users, err := c.api.ListUsers(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.users = nil
		return err
	}
	c.users = users
	return nil
}

func (c *Console) Users() []models.UserAccount {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.UserAccount, len(c.users))
	copy(out, c.users)
	return out
}

func (c *Console) SaveUser(ctx context.Context, id int, form UserForm) error {
	var err error
	if id == 0 {
		_, err = c.api.CreateUser(ctx, upstream.CreateUserInput{
			FullName:    form.FullName,
			Email:       form.Email,
			Password:    form.Password,
			PhoneNumber: form.PhoneNumber,
		})
	} else {
		_, err = c.api.UpdateUser(ctx, id, upstream.UpdateUserInput{
			FullName:    &form.FullName,
			PhoneNumber: &form.PhoneNumber,
			IsActive:    form.IsActive,
		})
	}
	if err != nil {
		return err
	}
	return c.LoadUsers(ctx)
}

func (c *Console) DeleteUser(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := c.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	return c.LoadUsers(ctx)
}
