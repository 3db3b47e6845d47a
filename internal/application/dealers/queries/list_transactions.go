package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
)

// ListDealerTransactionsQuery lists recorded sales for one dealer
type ListDealerTransactionsQuery struct {
	Dealer string
}

// TransactionDTO represents a recorded dealer sale
type TransactionDTO struct {
	ID       string    `json:"id"`
	Dealer   string    `json:"dealer"`
	Product  string    `json:"product"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Total    float64   `json:"total"`
	Date     time.Time `json:"date"`
	Summary  string    `json:"summary"`
}

// ListDealerTransactionsResponse contains the dealer's transactions, oldest first
type ListDealerTransactionsResponse struct {
	Dealer       string
	Transactions []TransactionDTO
	Total        float64
}

// ListDealerTransactionsHandler handles transaction listing queries
type ListDealerTransactionsHandler struct {
	directory dealer.Directory
	repo      dealer.TransactionRepository
}

// NewListDealerTransactionsHandler creates a new handler
func NewListDealerTransactionsHandler(directory dealer.Directory, repo dealer.TransactionRepository) *ListDealerTransactionsHandler {
	return &ListDealerTransactionsHandler{
		directory: directory,
		repo:      repo,
	}
}

// Handle executes the query
func (h *ListDealerTransactionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListDealerTransactionsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	dealers, err := h.directory.ListDealers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dealers: %w", err)
	}
	d, err := dealer.FindByName(dealers, query.Dealer)
	if err != nil {
		return nil, err
	}

	transactions, err := h.repo.ListByDealer(ctx, d.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	response := &ListDealerTransactionsResponse{
		Dealer:       d.Name,
		Transactions: make([]TransactionDTO, len(transactions)),
	}
	for i, tx := range transactions {
		response.Transactions[i] = ToTransactionDTO(tx)
		response.Total += tx.Total()
	}
	return response, nil
}

// ToTransactionDTO converts a domain transaction to a DTO
func ToTransactionDTO(tx *dealer.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:       tx.ID(),
		Dealer:   tx.Dealer(),
		Product:  tx.Product(),
		Quantity: tx.Quantity(),
		Price:    tx.Price(),
		Total:    tx.Total(),
		Date:     tx.Date(),
		Summary:  tx.Summary(),
	}
}
