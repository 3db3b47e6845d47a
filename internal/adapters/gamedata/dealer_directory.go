package gamedata

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
)

//go:embed dealers.json
var builtinDealers []byte

// Placeholders for dealer fields the source left blank
const (
	UnknownRegion   = "Not Available"
	UnknownLocation = "Unknown"
)

// ParseDealers reads a {"dealers": [...]} document. Records without a name are
// skipped; missing fields take the usual defaults, and a missing
// percentage_taken is treated as dealer.DefaultPercentageTaken.
func ParseDealers(raw []byte) ([]dealer.Dealer, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("failed to parse dealer data: malformed JSON")
	}

	list := gjson.GetBytes(raw, "dealers")
	if !list.IsArray() {
		return nil, fmt.Errorf("failed to parse dealer data: missing \"dealers\" array")
	}

	var dealers []dealer.Dealer
	list.ForEach(func(_, d gjson.Result) bool {
		name := strings.TrimSpace(d.Get("name").String())
		if name == "" {
			return true
		}

		percentage := dealer.DefaultPercentageTaken
		if p := d.Get("percentage_taken"); p.Exists() {
			percentage = p.Float()
		}

		dealers = append(dealers, dealer.Dealer{
			Name:                name,
			Region:              orDefault(d.Get("region").String(), UnknownRegion),
			Location:            orDefault(d.Get("location").String(), UnknownLocation),
			PercentageTaken:     percentage,
			PreferredEffects:    stringArray(d.Get("preferred_effects")),
			MaxQuantity:         int(d.Get("max_quantity").Int()),
			InitialBuyIn:        d.Get("initial_buy_in").Float(),
			AssignableCustomers: int(d.Get("assignable_customers").Int()),
			Notes:               d.Get("notes").String(),
		})
		return true
	})
	return dealers, nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// DealerDirectory serves dealers from a JSON file, or the built-in list when no
// path is configured. The file is re-read on every call so edits are picked up
// by a running server.
type DealerDirectory struct {
	path string
}

// NewDealerDirectory creates a directory backed by path ("" = built-in dealers)
func NewDealerDirectory(path string) *DealerDirectory {
	return &DealerDirectory{path: path}
}

// ListDealers implements dealer.Directory
func (d *DealerDirectory) ListDealers(ctx context.Context) ([]dealer.Dealer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := builtinDealers
	if d.path != "" {
		var err error
		raw, err = os.ReadFile(d.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dealer file: %w", err)
		}
	}
	return ParseDealers(raw)
}
