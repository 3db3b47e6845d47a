package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgHiWhite)
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// marginColor grades a profit margin: green above 100%, yellow when positive
func marginColor(margin float64) *color.Color {
	switch {
	case margin >= 100:
		return success
	case margin > 0:
		return warn
	default:
		return danger
	}
}

func mixerList(mixers []string) string {
	if len(mixers) == 0 {
		return "(none)"
	}
	return strings.Join(mixers, " → ")
}

func printRecipe(w io.Writer, r *types.RecipeDTO) {
	accent.Fprintf(w, "%s\n", r.Product)
	fmt.Fprintf(w, "  Mixers:        %s\n", mixerList(r.Mixers))
	fmt.Fprintf(w, "  Effects:       %s\n", strings.Join(r.Effects, ", "))
	fmt.Fprintf(w, "  Market value:  $%d\n", r.MarketValue)
	fmt.Fprintf(w, "  Cost:          $%d\n", r.TotalCost)
	fmt.Fprintf(w, "  Profit:        $%d ", r.Profit)
	marginColor(r.ProfitMargin).Fprintf(w, "(%.1f%%)\n", r.ProfitMargin)
	fmt.Fprintf(w, "  Addictiveness: %.0f%%\n", r.Addictiveness*100)
}

func printRecipeTable(w io.Writer, recipes []*types.RecipeDTO) {
	if len(recipes) == 0 {
		neutral.Fprintln(w, "No recipes found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tMIXERS\tVALUE\tCOST\tPROFIT\tMARGIN\tEFFECTS")
	for i, r := range recipes {
		fmt.Fprintf(tw, "%d\t%s\t$%d\t$%d\t$%d\t%.1f%%\t%s\n",
			i+1, mixerList(r.Mixers), r.MarketValue, r.TotalCost, r.Profit, r.ProfitMargin,
			strings.Join(r.Effects, ", "))
	}
	tw.Flush()
}

func printIgnored(w io.Writer, ignored []types.IgnoredMixerDTO) {
	for _, m := range ignored {
		if len(m.Suggestions) > 0 {
			warn.Fprintf(w, "Ignored unknown mixer %q (did you mean %s?)\n", m.Name, strings.Join(m.Suggestions, ", "))
		} else {
			warn.Fprintf(w, "Ignored unknown mixer %q\n", m.Name)
		}
	}
}
