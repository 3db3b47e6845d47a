package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/domain/search"
)

// NewEffectsCommand resolves the effects of a mix
func NewEffectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "effects [product] [mixer...]",
		Short:   "Show the effects a mixer sequence produces",
		Example: `  schedule1 effects "OG Kush" Cuke Banana`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			product, mixers, err := s.product(args)
			if err != nil {
				return err
			}

			resp, err := s.send(&recipeQueries.ResolveEffectsQuery{Product: product, Mixers: mixers})
			if err != nil {
				return err
			}
			out := resp.(*recipeQueries.ResolveEffectsResponse)

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, out)
			}
			if !out.KnownProduct {
				warn.Fprintf(w, "Unknown product %q: starting with no effects\n", product)
			}
			printIgnored(w, out.IgnoredMixers)
			accent.Fprintf(w, "%s + %s\n", product, mixerList(mixers))
			if len(out.Effects) == 0 {
				neutral.Fprintln(w, "  (no effects)")
			}
			for _, e := range out.Effects {
				fmt.Fprintf(w, "  • %s\n", e)
			}
			return nil
		},
	}
}

// NewEvaluateCommand values one mix
func NewEvaluateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "evaluate [product] [mixer...]",
		Short:   "Value a mix: effects, market value, cost and profit",
		Example: `  schedule1 evaluate Methamphetamine Banana Battery "Horse semen"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			product, mixers, err := s.product(args)
			if err != nil {
				return err
			}

			resp, err := s.send(&recipeQueries.EvaluateRecipeQuery{Product: product, Mixers: mixers})
			if err != nil {
				return err
			}
			out := resp.(*recipeQueries.EvaluateRecipeResponse)

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, out)
			}
			printIgnored(w, out.IgnoredMixers)
			printRecipe(w, out.Recipe)
			return nil
		},
	}
}

// NewTopCommand searches one product
func NewTopCommand() *cobra.Command {
	var topN, maxMixers int

	cmd := &cobra.Command{
		Use:     "top [product]",
		Short:   "Find the most profitable distinct recipes for a product",
		Example: `  schedule1 top "OG Kush" --top-n 3 --max-mixers 4`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			product, _, err := s.product(args)
			if err != nil {
				return err
			}

			resp, err := s.send(&recipeQueries.TopRecipesQuery{Product: product, TopN: topN, MaxMixers: maxMixers})
			if err != nil {
				return err
			}
			out := resp.(*recipeQueries.TopRecipesResponse)

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, out)
			}
			accent.Fprintf(w, "Top %d recipes for %s (up to %d mixers)\n", out.TopN, out.Product, out.MaxMixers)
			printRecipeTable(w, out.Recipes)
			return nil
		},
	}

	cmd.Flags().IntVarP(&topN, "top-n", "n", 0, "Number of recipes (default from config)")
	cmd.Flags().IntVarP(&maxMixers, "max-mixers", "m", 0, "Longest mixer sequence, 1-8 (default from config)")
	return cmd
}

// NewTopAllCommand searches every product
func NewTopAllCommand() *cobra.Command {
	var topN, maxMixers int

	cmd := &cobra.Command{
		Use:   "top-all",
		Short: "Find the best recipes for every product",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			progress := func(p search.Progress) error {
				neutral.Fprintf(cmd.ErrOrStderr(), "[%d/%d] %s done\n", p.Completed, p.Total, p.Product)
				return nil
			}

			resp, err := s.send(&recipeQueries.TopRecipesAllProductsQuery{
				TopN:      topN,
				MaxMixers: maxMixers,
				Progress:  progress,
			})
			if err != nil {
				return err
			}
			out := resp.(*recipeQueries.TopRecipesAllProductsResponse)

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, out.Products)
			}
			for _, p := range out.Products {
				accent.Fprintf(w, "\n%s\n", p.Product)
				printRecipeTable(w, p.Recipes)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&topN, "top-n", "n", 0, "Recipes per product (default from config)")
	cmd.Flags().IntVarP(&maxMixers, "max-mixers", "m", 0, "Longest mixer sequence, 1-8 (default from config)")
	return cmd
}

// NewCompareCommand ranks several mixes by margin
func NewCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <mix>...",
		Short: "Rank mixes by profit margin",
		Long: `Rank mixes by profit margin. Each mix is written as

  [name=]product[:mixer,mixer,...]`,
		Example: `  schedule1 compare "Cuke Kush=OG Kush:Cuke" "Methamphetamine:Battery,Banana"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mixes := make([]recipeQueries.MixInput, 0, len(args))
			for _, arg := range args {
				mix, err := ParseMixSpec(arg)
				if err != nil {
					return err
				}
				mixes = append(mixes, mix)
			}

			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&recipeQueries.CompareMixesQuery{Mixes: mixes})
			if err != nil {
				return err
			}
			out := resp.(*recipeQueries.CompareMixesResponse)

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, out.Comparisons)
			}
			tw := newTable(w)
			fmt.Fprintln(tw, "RANK\tNAME\tPRODUCT\tVALUE\tCOST\tPROFIT\tMARGIN")
			for _, c := range out.Comparisons {
				fmt.Fprintf(tw, "%d\t%s\t%s\t$%d\t$%d\t$%d\t%.1f%%\n",
					c.Rank, c.Name, c.Recipe.Product, c.Recipe.MarketValue, c.Recipe.TotalCost,
					c.Recipe.Profit, c.Recipe.ProfitMargin)
			}
			return tw.Flush()
		},
	}
}

// ParseMixSpec parses "[name=]product[:mixer,mixer,...]"
func ParseMixSpec(spec string) (recipeQueries.MixInput, error) {
	var mix recipeQueries.MixInput

	rest := spec
	if name, after, ok := strings.Cut(rest, "="); ok {
		mix.Name = strings.TrimSpace(name)
		rest = after
	}
	product, mixers, _ := strings.Cut(rest, ":")
	mix.Product = strings.TrimSpace(product)
	mix.Mixers = splitList(mixers)

	if mix.Product == "" {
		return recipeQueries.MixInput{}, fmt.Errorf("mix %q has no product", spec)
	}
	return mix, nil
}

// NewBatchCommand computes batch profit
func NewBatchCommand() *cobra.Command {
	var (
		batches int
		name    string
	)

	cmd := &cobra.Command{
		Use:     "batch [product] [mixer...]",
		Short:   "Estimate profit and ROI for growing or cooking batches",
		Example: `  schedule1 batch "OG Kush" Cuke --batches 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			product, mixers, err := s.product(args)
			if err != nil {
				return err
			}

			resp, err := s.send(&recipeQueries.BatchProfitQuery{
				Product:    product,
				Mixers:     mixers,
				Batches:    batches,
				RecipeName: name,
			})
			if err != nil {
				return err
			}
			b := resp.(*recipeQueries.BatchProfitResponse).Batch

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, b)
			}
			accent.Fprintf(w, "%s\n", b.RecipeName)
			fmt.Fprintf(w, "  Batches:       %d\n", b.Batches)
			fmt.Fprintf(w, "  Seed cost:     $%.2f\n", b.TotalSeedCost)
			fmt.Fprintf(w, "  Yield:         %d units at $%.2f\n", b.TotalYield, b.ValuePerUnit)
			fmt.Fprintf(w, "  Revenue:       $%.2f\n", b.TotalRevenue)
			fmt.Fprintf(w, "  Profit:        $%.2f ", b.TotalProfit)
			marginColor(b.ROIPercentage).Fprintf(w, "(ROI %.1f%%)\n", b.ROIPercentage)
			return nil
		},
	}

	cmd.Flags().IntVarP(&batches, "batches", "b", 1, "Number of batches")
	cmd.Flags().StringVar(&name, "name", "", "Label for the result")
	return cmd
}
