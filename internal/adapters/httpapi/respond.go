package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
)

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}

// writeFailure maps application errors onto HTTP status codes
func writeFailure(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	var (
		validation *shared.ValidationError
		invalidTx  *dealer.ErrInvalidTransaction
		noRecipe   *cookbook.ErrRecipeNotFound
		noDealer   *dealer.ErrDealerNotFound
	)
	switch {
	case catalog.IsUnknownProduct(err), errors.As(err, &noRecipe), errors.As(err, &noDealer):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &invalidTx):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// intParam reads an optional integer query parameter; absent means 0
func intParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
