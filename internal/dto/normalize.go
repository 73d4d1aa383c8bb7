// Package dto convertit les enregistrements bruts du backend (casse
// incohérente : PascalCase ou camelCase selon l'endpoint, parfois mélangées
// dans un même enregistrement) vers la forme canonique du terminal.
//
// Chaque champ canonique est lu via une liste de clés sources en ordre de
// priorité (PascalCase d'abord, camelCase ensuite) avec une valeur par défaut.
// La résolution se fait champ par champ, jamais enregistrement par
// enregistrement. Les transformations sont pures et n'échouent jamais : une
// entrée malformée produit les valeurs par défaut.
package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"megapos_terminal/internal/models"
)

const (
	// PlaceholderImageURL remplace les visuels manquants dans le catalogue.
	PlaceholderImageURL = "https://images.pexels.com/photos/164005/pexels-photo-164005.jpeg?auto=compress&cs=tinysrgb&w=400"

	placeholderProductName  = "Produit sans nom"
	placeholderCategoryName = "Non classé"
)

// Record est un enregistrement backend décodé sans schéma.
type Record map[string]any

// pick retourne la première valeur non nulle parmi les clés, dans l'ordre.
// C'est l'unique routine de résolution : toutes les lectures passent par elle.
func pick(rec Record, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func str(rec Record, def string, keys ...string) string {
	v, ok := pick(rec, keys...)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

// number coerce défensivement vers float64 : les valeurs absentes, non
// numériques ou non finies valent zéro pour que l'arithmétique en aval ne
// produise jamais de NaN.
func number(rec Record, keys ...string) float64 {
	v, ok := pick(rec, keys...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

func integer(rec Record, keys ...string) int {
	return int(number(rec, keys...))
}

func boolean(rec Record, def bool, keys ...string) bool {
	v, ok := pick(rec, keys...)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

func timestamp(rec Record, keys ...string) time.Time {
	s := str(rec, "", keys...)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	// Certains endpoints omettent le fuseau.
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

func nested(rec Record, keys ...string) Record {
	v, ok := pick(rec, keys...)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return Record(m)
}

// ProductDisplayID reconstruit l'identifiant d'affichage stable à partir de
// l'identifiant numérique backend (largeur fixe, complété par des zéros).
func ProductDisplayID(backendID int) string {
	return fmt.Sprintf("prod-%03d", backendID)
}

// ProductBackendID retrouve l'identifiant numérique depuis l'identifiant
// d'affichage. Zéro si la forme n'est pas reconnue.
func ProductBackendID(displayID string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(displayID, "prod-"))
	if err != nil {
		return 0
	}
	return n
}

// NormalizeProduct produit l'entité canonique, avec des valeurs sûres pour
// tous les champs d'affichage obligatoires.
func NormalizeProduct(rec Record) models.Product {
	backendID := integer(rec, "ProductID", "productID")
	detail := nested(rec, "ProductDetail", "productDetail")

	imageURL := str(rec, "", "ImageUrl", "imageUrl")
	if imageURL == "" && detail != nil {
		imageURL = str(detail, "", "ImageUrl", "imageUrl")
	}
	if imageURL == "" {
		imageURL = PlaceholderImageURL
	}

	stock := integer(rec, "StockQuantity", "stockQuantity")
	if stock < 0 {
		stock = 0
	}
	price := number(rec, "Price", "price")
	if price < 0 {
		price = 0
	}

	return models.Product{
		ID:           ProductDisplayID(backendID),
		CategoryID:   integer(rec, "CategoryID", "categoryID"),
		CategoryName: str(rec, placeholderCategoryName, "CategoryName", "categoryName"),
		Name:         str(rec, placeholderProductName, "ProductName", "productName"),
		Barcode:      str(rec, "", "SKU", "sku"),
		Price:        price,
		Stock:        stock,
		ImageURL:     imageURL,
		Location:     normalizeShelfLocation(rec),
		IsActive:     boolean(rec, true, "IsActive", "isActive"),
		CreatedAt:    timestamp(rec, "CreatedAt", "createdAt"),
	}
}

// normalizeShelfLocation lit l'emplacement rayon optionnel. Nil quand le
// backend ne le fournit pas : l'affichage du plan magasin est facultatif.
func normalizeShelfLocation(rec Record) *models.ShelfLocation {
	loc := nested(rec, "ShelfLocation", "shelfLocation", "Location", "location")
	if loc == nil {
		return nil
	}
	return &models.ShelfLocation{
		Zone:     str(loc, "", "Zone", "zone"),
		Aisle:    integer(loc, "AisleNumber", "aisleNumber"),
		Shelf:    integer(loc, "ShelfNumber", "shelfNumber"),
		Position: str(loc, "", "Position", "position"),
	}
}

func NormalizeCategory(rec Record) models.Category {
	return models.Category{
		ID:               integer(rec, "CategoryID", "categoryID"),
		Name:             str(rec, "Catégorie sans nom", "CategoryName", "categoryName"),
		Description:      str(rec, "", "Description", "description"),
		ParentCategoryID: integer(rec, "ParentCategoryID", "parentCategoryID"),
		IsActive:         boolean(rec, true, "IsActive", "isActive"),
	}
}

func NormalizeUser(rec Record) models.UserAccount {
	return models.UserAccount{
		UserID:    integer(rec, "UserID", "userID"),
		FullName:  str(rec, "", "FullName", "fullName"),
		Email:     str(rec, "", "Email", "email"),
		Phone:     str(rec, "", "PhoneNumber", "phoneNumber"),
		CreatedAt: timestamp(rec, "CreatedAt", "createdAt"),
		IsActive:  boolean(rec, true, "IsActive", "isActive"),
		AvatarURL: str(rec, "", "AvatarUrl", "avatarUrl"),
	}
}

// NormalizeOrderStatus replie les statuts backend ("Pending", "SHIPPING", ...)
// sur l'énumération fixe. Tout statut inconnu vaut pending.
func NormalizeOrderStatus(raw string) models.OrderStatus {
	if models.IsValidOrderStatus(strings.ToLower(raw)) {
		return models.OrderStatus(strings.ToLower(raw))
	}
	return models.OrderStatusPending
}

func NormalizeOrder(rec Record) models.Order {
	orderID := integer(rec, "OrderID", "orderID")

	orderNumber := str(rec, "", "OrderNumber", "orderNumber")
	if orderNumber == "" {
		orderNumber = fmt.Sprintf("ORD-%06d", orderID)
	}

	var items []models.OrderItem
	itemsCount := 0
	if raw, ok := pick(rec, "OrderItems", "orderItems", "OrderDetails", "orderDetails"); ok {
		if list, ok := raw.([]any); ok {
			for _, entry := range list {
				m, ok := entry.(map[string]any)
				if !ok {
					continue
				}
				item := normalizeOrderItem(Record(m))
				items = append(items, item)
				itemsCount += item.Quantity
			}
		}
	}

	return models.Order{
		ID:              orderID,
		UserID:          integer(rec, "UserID", "userID"),
		OrderNumber:     orderNumber,
		TotalAmount:     number(rec, "TotalAmount", "totalAmount"),
		Status:          NormalizeOrderStatus(str(rec, "", "Status", "status")),
		ShippingAddress: str(rec, "", "ShippingAddress", "shippingAddress"),
		Items:           items,
		ItemsCount:      itemsCount,
		CreatedAt:       timestamp(rec, "CreatedAt", "createdAt", "OrderDate", "orderDate"),
	}
}

func normalizeOrderItem(rec Record) models.OrderItem {
	price := number(rec, "Price", "price")
	if price == 0 {
		price = number(rec, "UnitPrice", "unitPrice")
	}
	return models.OrderItem{
		ProductID:   integer(rec, "ProductID", "productID"),
		ProductName: str(rec, "", "ProductName", "productName"),
		Quantity:    integer(rec, "Quantity", "quantity"),
		Price:       price,
	}
}

// NormalizeProducts applique NormalizeProduct à une liste brute.
func NormalizeProducts(recs []Record) []models.Product {
	out := make([]models.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, NormalizeProduct(rec))
	}
	return out
}

func NormalizeCategories(recs []Record) []models.Category {
	out := make([]models.Category, 0, len(recs))
	for _, rec := range recs {
		out = append(out, NormalizeCategory(rec))
	}
	return out
}

func NormalizeOrders(recs []Record) []models.Order {
	out := make([]models.Order, 0, len(recs))
	for _, rec := range recs {
		out = append(out, NormalizeOrder(rec))
	}
	return out
}

func NormalizeUsers(recs []Record) []models.UserAccount {
	out := make([]models.UserAccount, 0, len(recs))
	for _, rec := range recs {
		out = append(out, NormalizeUser(rec))
	}
	return out
}
