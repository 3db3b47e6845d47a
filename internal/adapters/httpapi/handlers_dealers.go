package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	dealerCommands "github.com/kibahcorps/schedule1-go/internal/application/dealers/commands"
	dealerQueries "github.com/kibahcorps/schedule1-go/internal/application/dealers/queries"
)

func (s *Server) handleRankDealers(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Product string   `json:"product"`
		Mixers  []string `json:"mixers"`
		Effects []string `json:"effects"`
		Limit   int      `json:"limit"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.mediator.Send(r.Context(), &dealerQueries.RankDealersQuery{
		Product: in.Product,
		Mixers:  in.Mixers,
		Effects: in.Effects,
		Limit:   in.Limit,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	out := resp.(*dealerQueries.RankDealersResponse)
	writeJSON(w, http.StatusOK, map[string]any{
		"effects": out.Effects,
		"matches": out.Matches,
	})
}

func (s *Server) handleEstimateDealer(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Dealer   string   `json:"dealer"`
		Product  string   `json:"product"`
		Mixers   []string `json:"mixers"`
		Quantity int      `json:"quantity"`
		Price    float64  `json:"price"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.mediator.Send(r.Context(), &dealerQueries.EstimateDealerProfitQuery{
		Dealer:   in.Dealer,
		Product:  in.Product,
		Mixers:   in.Mixers,
		Quantity: in.Quantity,
		Price:    in.Price,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.(*dealerQueries.EstimateDealerProfitResponse).Estimate)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &dealerQueries.ListDealerTransactionsQuery{Dealer: chi.URLParam(r, "dealer")})
	if err != nil {
		writeFailure(w, err)
		return
	}
	out := resp.(*dealerQueries.ListDealerTransactionsResponse)
	writeJSON(w, http.StatusOK, map[string]any{
		"dealer":       out.Dealer,
		"transactions": out.Transactions,
		"total":        out.Total,
	})
}

func (s *Server) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Product  string     `json:"product"`
		Quantity int        `json:"quantity"`
		Price    float64    `json:"price"`
		Date     *time.Time `json:"date"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.mediator.Send(r.Context(), &dealerCommands.RecordDealerTransactionCommand{
		Dealer:   chi.URLParam(r, "dealer"),
		Product:  in.Product,
		Quantity: in.Quantity,
		Price:    in.Price,
		Date:     in.Date,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp.(*dealerCommands.RecordDealerTransactionResponse).Transaction)
}
