package helpers

import (
	"context"
	"sync"

	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
)

// StaticDealerDirectory serves a fixed dealer list
type StaticDealerDirectory struct {
	Dealers []dealer.Dealer
	Err     error
}

// ListDealers returns the configured dealers
func (d *StaticDealerDirectory) ListDealers(ctx context.Context) ([]dealer.Dealer, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	return append([]dealer.Dealer(nil), d.Dealers...), nil
}

// SampleDealers returns three dealers with distinct preferences and markups
func SampleDealers() []dealer.Dealer {
	return []dealer.Dealer{
		{
			Name:             "Benji Coleman",
			Region:           "Northtown",
			Location:         "Motel Room 2",
			PercentageTaken:  20,
			PreferredEffects: []string{"Calming", "Energizing"},
			MaxQuantity:      200,
		},
		{
			Name:             "Molly Presley",
			Region:           "Westville",
			Location:         "Back alley",
			PercentageTaken:  15,
			PreferredEffects: []string{"Euphoric", "Shrinking", "Zombifying"},
			MaxQuantity:      500,
		},
		{
			Name:            "Brad Crosby",
			Region:          "Docks",
			Location:        "Warehouse",
			PercentageTaken: 25,
			MaxQuantity:     1000,
		},
	}
}

// MockTransactionRepository is an in-memory dealer.TransactionRepository
type MockTransactionRepository struct {
	mu           sync.Mutex
	Transactions []*dealer.Transaction
}

// NewMockTransactionRepository creates an empty repository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

// Save appends the transaction
func (m *MockTransactionRepository) Save(ctx context.Context, tx *dealer.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transactions = append(m.Transactions, tx)
	return nil
}

// ListByDealer returns the dealer's transactions in insertion order
func (m *MockTransactionRepository) ListByDealer(ctx context.Context, dealerName string) ([]*dealer.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*dealer.Transaction
	for _, tx := range m.Transactions {
		if tx.Dealer() == dealerName {
			out = append(out, tx)
		}
	}
	return out, nil
}
