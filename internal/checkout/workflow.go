// Package checkout implémente la machine à états paiement + retrait de la
// caisse :
//
//	Idle → [TransferScan → TransferConfirmed] → FulfillmentChoice
//	     → (livraison) ValidatingDelivery → Submitting → Completed
//
// avec un retour vers Idle depuis chaque état sauf Completed. Rien n'est
// persisté côté backend avant la soumission : fermer le scan QR ou annuler au
// choix du retrait défait tout sans laisser d'état partiel.
//
// La machine n'est pas synchronisée : une seule caisse, une seule boucle
// d'événements. La session du terminal sérialise les accès.
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"megapos_terminal/internal/cart"
	"megapos_terminal/internal/models"
)

type State string

const (
	StateIdle               State = "idle"
	StateTransferScan       State = "transfer_scan"
	StateTransferConfirmed  State = "transfer_confirmed"
	StateFulfillmentChoice  State = "fulfillment_choice"
	StateValidatingDelivery State = "validating_delivery"
	StateSubmitting         State = "submitting"
	StateCompleted          State = "completed"
)

var (
	ErrCartEmpty    = errors.New("le panier est vide")
	ErrInFlight     = errors.New("un encaissement est déjà en cours")
	ErrInvalidState = errors.New("transition non autorisée dans cet état")
)

// OrderCreator soumet la commande au backend.
type OrderCreator interface {
	CreateOrderFromItems(ctx context.Context, userID int, req models.CreateOrderRequest) (models.Order, error)
}

// StockProjector applique la décrémentation optimiste au catalogue local.
type StockProjector interface {
	DecrementStock(productID string, quantity int)
}

// Ack est l'accusé de succès affiché à l'écran de félicitations.
type Ack struct {
	Order models.Order `json:"order"`
	Total float64      `json:"total"`
	Items int          `json:"items"`
}

type Workflow struct {
	cart   *cart.Cart
	orders OrderCreator
	stock  StockProjector

	emailSuffix string

	state    State
	inFlight bool
	payment  models.PaymentMethod

	// Instantané pris au moment du "payer" : les mutations ultérieures du
	// panier ne peuvent plus changer ce qui sera facturé.
	snapshot []models.CartItem
	total    float64
	items    int
	idemKey  string

	transferConfirmedAt time.Time

	form       *DeliveryForm
	fieldErrs  map[string]string
	lastResult *Ack
}

type Option func(*Workflow)

// WithEmailSuffix change le suffixe exigé pour l'email de livraison.
func WithEmailSuffix(suffix string) Option {
	return func(w *Workflow) { w.emailSuffix = suffix }
}

func NewWorkflow(c *cart.Cart, orders OrderCreator, stock StockProjector, opts ...Option) *Workflow {
	w := &Workflow{
		cart:        c,
		orders:      orders,
		stock:       stock,
		emailSuffix: DefaultEmailSuffix,
		state:       StateIdle,
		payment:     models.PaymentCash,
		form:        NewDeliveryForm(),
		fieldErrs:   map[string]string{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workflow) State() State                        { return w.state }
func (w *Workflow) PaymentMethod() models.PaymentMethod { return w.payment }
func (w *Workflow) Total() float64                      { return w.total }
func (w *Workflow) ItemCount() int                      { return w.items }
func (w *Workflow) DeliveryForm() *DeliveryForm         { return w.form }
func (w *Workflow) LastResult() *Ack                    { return w.lastResult }

// ValidationErrors retourne les erreurs de la dernière validation livraison.
func (w *Workflow) ValidationErrors() map[string]string {
	out := make(map[string]string, len(w.fieldErrs))
	for k, v := range w.fieldErrs {
		out[k] = v
	}
	return out
}

// Snapshot expose les lignes gelées de l'encaissement en cours.
func (w *Workflow) Snapshot() []models.CartItem {
	out := make([]models.CartItem, len(w.snapshot))
	copy(out, w.snapshot)
	return out
}

// Begin démarre un encaissement : no-op gardé si le panier est vide ou si un
// encaissement est déjà en vol. L'instantané et les totaux sont figés ici.
func (w *Workflow) Begin(method models.PaymentMethod) error {
	if w.inFlight {
		return ErrInFlight
	}
	if w.cart.IsEmpty() {
		return ErrCartEmpty
	}

	w.snapshot = w.cart.Snapshot()
	w.total = w.cart.TotalAmount()
	w.items = w.cart.TotalItems()
	w.idemKey = uuid.NewString()
	w.payment = method
	w.inFlight = true

	if method == models.PaymentTransfer {
		w.state = StateTransferScan
	} else {
		w.state = StateFulfillmentChoice
	}
	return nil
}

// QRPayload n'a de sens que pendant le scan de virement.
func (w *Workflow) QRPayload() string {
	return QRPayload(w.total)
}

func (w *Workflow) PaymentReference() string {
	return PaymentReference(w.items)
}

// ConfirmTransfer acte la réception manuelle du virement : pas de polling,
// pas de webhook. Passe au choix du retrait.
func (w *Workflow) ConfirmTransfer() error {
	if w.state != StateTransferScan {
		return ErrInvalidState
	}
	// L'animation de succès appartient à l'UI ; la machine acte la
	// confirmation immédiatement. TransferConfirmed équivaut au choix du
	// retrait pour la suite des transitions.
	w.transferConfirmedAt = time.Now()
	w.state = StateTransferConfirmed
	return nil
}

// Cancel abandonne l'encaissement en cours : instantané et garde de
// réentrance jetés, panier intact, retour à Idle. Fermer le scan QR avant de
// confirmer passe par ici — aucun état "paiement capté" partiel ne survit.
func (w *Workflow) Cancel() error {
	switch w.state {
	case StateIdle, StateCompleted:
		return nil
	case StateSubmitting:
		return ErrInvalidState
	}
	w.reset()
	return nil
}

// ConfirmFulfillment valide le choix de retrait et soumet la commande.
//
// Livraison : toutes les erreurs de formulaire sont collectées et rendues
// ensemble ; la machine reste en ValidatingDelivery tant que la map n'est pas
// vide. En cas de rejet backend, le panier et le stock restent intacts et la
// garde est relâchée vers Idle pour permettre une nouvelle tentative.
func (w *Workflow) ConfirmFulfillment(ctx context.Context, userID int, method models.FulfillmentMethod) (*Ack, map[string]string, error) {
	switch w.state {
	case StateFulfillmentChoice, StateTransferConfirmed, StateValidatingDelivery:
	default:
		return nil, nil, ErrInvalidState
	}

	var delivery *models.DeliveryInfo
	if method == models.FulfillmentDelivery {
		info := w.form.Info()
		if errs := ValidateDeliveryInfo(info, w.emailSuffix); len(errs) > 0 {
			w.fieldErrs = errs
			w.state = StateValidatingDelivery
			return nil, errs, nil
		}
		w.fieldErrs = map[string]string{}
		delivery = &info
	}

	req := models.CreateOrderRequest{
		Items:             make([]models.CreateOrderItem, 0, len(w.snapshot)),
		TotalAmount:       w.total,
		PaymentMethod:     w.payment,
		FulfillmentMethod: method,
		DeliveryInfo:      delivery,
		IdempotencyKey:    w.idemKey,
	}
	for _, line := range w.snapshot {
		req.Items = append(req.Items, models.CreateOrderItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}

	w.state = StateSubmitting
	order, err := w.orders.CreateOrderFromItems(ctx, userID, req)
	if err != nil {
		// Échec : ni le panier ni le stock ne bougent, l'opérateur peut
		// relancer l'encaissement depuis le panier inchangé.
		w.reset()
		return nil, nil, err
	}

	for _, line := range w.snapshot {
		w.stock.DecrementStock(line.Product.ID, line.Quantity)
	}
	w.cart.Clear()

	ack := &Ack{Order: order, Total: w.total, Items: w.items}
	w.lastResult = ack
	w.reset()
	w.state = StateCompleted
	return ack, nil, nil
}

// reset efface l'état transitoire de l'encaissement : méthode de paiement au
// défaut, formulaire vidé, erreurs effacées, garde relâchée.
func (w *Workflow) reset() {
	w.state = StateIdle
	w.inFlight = false
	w.payment = models.PaymentCash
	w.snapshot = nil
	w.total = 0
	w.items = 0
	w.idemKey = ""
	w.transferConfirmedAt = time.Time{}
	w.form.Reset()
	w.fieldErrs = map[string]string{}
}
