package dealer

import "context"

// Directory supplies dealer records loaded from an external source
type Directory interface {
	ListDealers(ctx context.Context) ([]Dealer, error)
}

// TransactionRepository persists dealer transactions
type TransactionRepository interface {
	Save(ctx context.Context, tx *Transaction) error
	ListByDealer(ctx context.Context, dealerName string) ([]*Transaction, error)
}
