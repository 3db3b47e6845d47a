package dealer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionDateLayout is the display format used for transaction dates
const TransactionDateLayout = "01/02/2006"

// Transaction records a sale made through a dealer
type Transaction struct {
	id       string
	dealer   string
	product  string
	quantity int
	price    float64
	date     time.Time
}

// NewTransaction validates and creates a transaction with a fresh id
func NewTransaction(dealerName, product string, quantity int, price float64, date time.Time) (*Transaction, error) {
	if quantity <= 0 {
		return nil, &ErrInvalidTransaction{Reason: fmt.Sprintf("quantity must be positive, got %d", quantity)}
	}
	if price < 0 {
		return nil, &ErrInvalidTransaction{Reason: fmt.Sprintf("price must not be negative, got %.2f", price)}
	}
	return ReconstructTransaction(uuid.NewString(), dealerName, product, quantity, price, date), nil
}

// ReconstructTransaction rebuilds a stored transaction without validation
func ReconstructTransaction(id, dealerName, product string, quantity int, price float64, date time.Time) *Transaction {
	return &Transaction{
		id:       id,
		dealer:   dealerName,
		product:  product,
		quantity: quantity,
		price:    price,
		date:     date,
	}
}

func (t *Transaction) ID() string      { return t.id }
func (t *Transaction) Dealer() string  { return t.dealer }
func (t *Transaction) Product() string { return t.product }
func (t *Transaction) Quantity() int   { return t.quantity }
func (t *Transaction) Price() float64  { return t.price }
func (t *Transaction) Date() time.Time { return t.date }

// Total is quantity times unit price
func (t *Transaction) Total() float64 {
	return float64(t.quantity) * t.price
}

// Summary renders the transaction as a single line
func (t *Transaction) Summary() string {
	return fmt.Sprintf("%d %s units at $%.0f each (%s)", t.quantity, t.product, t.price, t.date.Format(TransactionDateLayout))
}
