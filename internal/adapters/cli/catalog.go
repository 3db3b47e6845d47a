package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
)

// NewCatalogCommand lists game data
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products, mixers and effects",
	}

	cmd.AddCommand(newCatalogProductsCommand())
	cmd.AddCommand(newCatalogMixersCommand())
	cmd.AddCommand(newCatalogEffectsCommand())

	return cmd
}

func newCatalogProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List base products and strains",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&recipeQueries.ListProductsQuery{})
			if err != nil {
				return err
			}
			products := resp.(*recipeQueries.ListProductsResponse).Products

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, products)
			}
			tw := newTable(w)
			fmt.Fprintln(tw, "NAME\tKIND\tBASE VALUE\tEFFECT\tSEED COST\tYIELD")
			for _, p := range products {
				if p.Kind == recipeQueries.ProductKindStrain {
					fmt.Fprintf(tw, "%s\t%s\t$%.0f\t%s\t$%.0f\t%d-%d\n",
						p.Name, p.Kind, p.BaseValue, p.Effect, p.SeedCost, p.YieldRange[0], p.YieldRange[1])
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t$%.0f\t-\t-\t-\n", p.Name, p.Kind, p.BaseValue)
			}
			return tw.Flush()
		},
	}
}

func newCatalogMixersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mixers",
		Short: "List mixers with their effect, cost and unlock rank",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&recipeQueries.ListMixersQuery{})
			if err != nil {
				return err
			}
			mixers := resp.(*recipeQueries.ListMixersResponse).Mixers

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, mixers)
			}
			tw := newTable(w)
			fmt.Fprintln(tw, "NAME\tEFFECT\tCOST\tUNLOCK")
			for _, m := range mixers {
				fmt.Fprintf(tw, "%s\t%s\t$%d\t%s\n", m.Name, m.Effect, m.Cost, m.Unlock)
			}
			return tw.Flush()
		},
	}
}

func newCatalogEffectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "effects",
		Short: "List effects with multiplier and addictiveness",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&recipeQueries.ListEffectsQuery{})
			if err != nil {
				return err
			}
			effects := resp.(*recipeQueries.ListEffectsResponse).Effects

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, effects)
			}
			tw := newTable(w)
			fmt.Fprintln(tw, "NAME\tMULTIPLIER\tADDICTIVENESS\tTIER")
			for _, e := range effects {
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%d\n", e.Name, e.Multiplier, e.Addictiveness, e.Tier)
			}
			return tw.Flush()
		},
	}
}
