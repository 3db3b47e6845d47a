package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	dealerCommands "github.com/kibahcorps/schedule1-go/internal/application/dealers/commands"
	dealerQueries "github.com/kibahcorps/schedule1-go/internal/application/dealers/queries"
)

const dateLayout = "01/02/2006"

// NewDealersCommand groups dealer ranking, estimates and the sales ledger
func NewDealersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dealers",
		Aliases: []string{"dealer"},
		Short:   "Rank dealers and track sales made through them",
	}

	cmd.AddCommand(newDealersRankCommand())
	cmd.AddCommand(newDealersEstimateCommand())
	cmd.AddCommand(newDealersRecordCommand())
	cmd.AddCommand(newDealersHistoryCommand())

	return cmd
}

func newDealersRankCommand() *cobra.Command {
	var (
		effects string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "rank [product] [mixer...]",
		Short: "Rank dealers by effect match and markup",
		Long: `Rank dealers for a mix. Either pass a product and mixers, whose effects are
resolved first, or pass --effects directly.

Examples:
  schedule1 dealers rank "OG Kush" Cuke Banana
  schedule1 dealers rank --effects Energizing,Gingeritis --limit 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			query := &dealerQueries.RankDealersQuery{
				Effects: splitList(effects),
				Limit:   limit,
			}
			if len(query.Effects) == 0 {
				product, mixers, err := s.product(args)
				if err != nil {
					return err
				}
				query.Product = product
				query.Mixers = mixers
			}

			resp, err := s.send(query)
			if err != nil {
				return err
			}
			ranked := resp.(*dealerQueries.RankDealersResponse)

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, ranked)
			}
			neutral.Fprintf(w, "Effects: %s\n", strings.Join(ranked.Effects, ", "))
			tw := newTable(w)
			fmt.Fprintln(tw, "#\tDEALER\tREGION\tMATCHES\tMATCH %\tMARKUP\tMAX QTY\tSCORE")
			for i, m := range ranked.Matches {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.0f%%\t%.0f%%\t%d\t%.2f\n",
					i+1, m.DealerName, m.Region, m.MatchingEffects, m.EffectMatchPercentage,
					m.MarkupPercentage, m.MaxQuantity, m.Score)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&effects, "effects", "", "Comma-separated effects to match instead of resolving a mix")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum dealers to show (0 = all)")
	return cmd
}

func newDealersEstimateCommand() *cobra.Command {
	var (
		quantity int
		price    float64
	)

	cmd := &cobra.Command{
		Use:   "estimate <dealer> <product> [mixer...]",
		Short: "Estimate what a dealer makes selling a mix",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&dealerQueries.EstimateDealerProfitQuery{
				Dealer:   args[0],
				Product:  args[1],
				Mixers:   args[2:],
				Quantity: quantity,
				Price:    price,
			})
			if err != nil {
				return err
			}
			est := resp.(*dealerQueries.EstimateDealerProfitResponse).Estimate

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, est)
			}
			accent.Fprintf(w, "%s selling %d × %s\n", est.DealerName, est.Quantity, est.Product)
			fmt.Fprintf(w, "  Base price:    $%.2f\n", est.BaseValue)
			fmt.Fprintf(w, "  Dealer price:  $%.2f (+%.0f%%)\n", est.DealerPrice, est.MarkupPercentage)
			fmt.Fprintf(w, "  Total base:    $%.2f\n", est.TotalBaseValue)
			fmt.Fprintf(w, "  Total dealer:  $%.2f\n", est.TotalDealerValue)
			success.Fprintf(w, "  Dealer profit: $%.2f\n", est.DealerProfit)
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units sold")
	cmd.Flags().Float64Var(&price, "price", 0, "Base price per unit (default: the mix's market value)")
	return cmd
}

func newDealersRecordCommand() *cobra.Command {
	var (
		quantity int
		price    float64
		date     string
	)

	cmd := &cobra.Command{
		Use:   "record <dealer> <product>",
		Short: "Record a sale made through a dealer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			command := &dealerCommands.RecordDealerTransactionCommand{
				Dealer:   args[0],
				Product:  args[1],
				Quantity: quantity,
				Price:    price,
			}
			if date != "" {
				parsed, err := time.ParseInLocation(dateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected MM/DD/YYYY: %w", date, err)
				}
				command.Date = &parsed
			}

			resp, err := s.send(command)
			if err != nil {
				return err
			}
			tx := resp.(*dealerCommands.RecordDealerTransactionResponse).Transaction

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, tx)
			}
			success.Fprintf(w, "✓ %s\n", tx.Summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 0, "Units sold (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "Price per unit (required)")
	cmd.Flags().StringVar(&date, "date", "", "Sale date as MM/DD/YYYY (default: now)")
	cmd.MarkFlagRequired("quantity")
	cmd.MarkFlagRequired("price")
	return cmd
}

func newDealersHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <dealer>",
		Short: "List sales recorded for a dealer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&dealerQueries.ListDealerTransactionsQuery{Dealer: args[0]})
			if err != nil {
				return err
			}
			history := resp.(*dealerQueries.ListDealerTransactionsResponse)

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, history)
			}
			if len(history.Transactions) == 0 {
				neutral.Fprintf(w, "No sales recorded for %s\n", history.Dealer)
				return nil
			}
			tw := newTable(w)
			fmt.Fprintln(tw, "DATE\tPRODUCT\tQTY\tPRICE\tTOTAL")
			for _, tx := range history.Transactions {
				fmt.Fprintf(tw, "%s\t%s\t%d\t$%.2f\t$%.2f\n",
					tx.Date.Format(dateLayout), tx.Product, tx.Quantity, tx.Price, tx.Total)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			success.Fprintf(w, "Total: $%.2f\n", history.Total)
			return nil
		},
	}
}
