package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValidOrderStatus vérifie qu'un statut appartient bien à l'énumération fixe.
func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipping,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

type FulfillmentMethod string

const (
	FulfillmentPickup   FulfillmentMethod = "pickup"
	FulfillmentDelivery FulfillmentMethod = "delivery"
)

// Order est la forme canonique d'une commande confirmée par le backend.
// Elle n'est jamais supprimée côté terminal, seul son statut évolue.
type Order struct {
	ID              int         `json:"id"`
	UserID          int         `json:"user_id"`
	OrderNumber     string      `json:"order_number"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	ItemsCount      int         `json:"items_count"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CreateOrderRequest est le payload envoyé au backend à la soumission.
// La clé d'idempotence est générée côté terminal : une re-soumission après
// timeout ne doit pas créer deux commandes.
type CreateOrderRequest struct {
	Items             []CreateOrderItem `json:"items"`
	TotalAmount       float64           `json:"totalAmount"`
	PaymentMethod     PaymentMethod     `json:"paymentMethod"`
	FulfillmentMethod FulfillmentMethod `json:"fulfillmentMethod"`
	DeliveryInfo      *DeliveryInfo     `json:"deliveryInfo,omitempty"`
	IdempotencyKey    string            `json:"idempotencyKey"`
}

type CreateOrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
