package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/dealers/queries"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
)

// RecordDealerTransactionCommand records a sale made through a dealer
type RecordDealerTransactionCommand struct {
	Dealer   string
	Product  string
	Quantity int
	Price    float64
	Date     *time.Time // Optional: if provided, use this date; otherwise use current time
}

// RecordDealerTransactionResponse returns the stored transaction
type RecordDealerTransactionResponse struct {
	Transaction queries.TransactionDTO
}

// RecordDealerTransactionHandler handles the RecordDealerTransaction command
type RecordDealerTransactionHandler struct {
	directory dealer.Directory
	repo      dealer.TransactionRepository
	clock     shared.Clock
}

// NewRecordDealerTransactionHandler creates a new RecordDealerTransactionHandler
func NewRecordDealerTransactionHandler(
	directory dealer.Directory,
	repo dealer.TransactionRepository,
	clock shared.Clock,
) *RecordDealerTransactionHandler {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &RecordDealerTransactionHandler{
		directory: directory,
		repo:      repo,
		clock:     clock,
	}
}

// Handle executes the RecordDealerTransaction command
func (h *RecordDealerTransactionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RecordDealerTransactionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecordDealerTransactionCommand")
	}

	dealers, err := h.directory.ListDealers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dealers: %w", err)
	}
	d, err := dealer.FindByName(dealers, cmd.Dealer)
	if err != nil {
		return nil, err
	}

	// Determine date
	date := h.clock.Now()
	if cmd.Date != nil {
		date = *cmd.Date
	}

	tx, err := dealer.NewTransaction(d.Name, cmd.Product, cmd.Quantity, cmd.Price, date)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := h.repo.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "dealer transaction recorded", map[string]interface{}{
		"dealer":  d.Name,
		"summary": tx.Summary(),
	})

	return &RecordDealerTransactionResponse{Transaction: queries.ToTransactionDTO(tx)}, nil
}
