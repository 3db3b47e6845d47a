package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
)

// GormDealerTransactionRepository implements dealer.TransactionRepository using GORM
type GormDealerTransactionRepository struct {
	db *gorm.DB
}

// NewGormDealerTransactionRepository creates a new GORM dealer transaction repository
func NewGormDealerTransactionRepository(db *gorm.DB) *GormDealerTransactionRepository {
	return &GormDealerTransactionRepository{db: db}
}

// Save persists a new transaction
func (r *GormDealerTransactionRepository) Save(ctx context.Context, tx *dealer.Transaction) error {
	model := &DealerTransactionModel{
		ID:       tx.ID(),
		Dealer:   tx.Dealer(),
		Product:  tx.Product(),
		Quantity: tx.Quantity(),
		Price:    tx.Price(),
		Date:     tx.Date(),
	}

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to create dealer transaction: %w", result.Error)
	}
	return nil
}

// ListByDealer retrieves a dealer's transactions, oldest first
func (r *GormDealerTransactionRepository) ListByDealer(ctx context.Context, dealerName string) ([]*dealer.Transaction, error) {
	var models []DealerTransactionModel
	result := r.db.WithContext(ctx).
		Where("dealer = ?", dealerName).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list dealer transactions: %w", result.Error)
	}

	transactions := make([]*dealer.Transaction, len(models))
	for i, m := range models {
		transactions[i] = dealer.ReconstructTransaction(m.ID, m.Dealer, m.Product, m.Quantity, m.Price, m.Date)
	}
	return transactions, nil
}
