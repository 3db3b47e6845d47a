package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kibahcorps/schedule1-go/internal/adapters/grpc"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
)

// NewRemoteCommand queries a running server over gRPC
func NewRemoteCommand() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Query a running server over gRPC",
		Long: `Send recipe queries to a server started with 'schedule1 serve'.

The address defaults to grpc.address from the configuration.`,
	}

	cmd.PersistentFlags().StringVar(&address, "address", "", "gRPC server address (host:port)")

	cmd.AddCommand(newRemoteTopCommand(&address))
	cmd.AddCommand(newRemoteEvaluateCommand(&address))

	return cmd
}

// dialRemote connects to the recipe service and returns a context bounded by
// the configured dial timeout
func dialRemote(cmd *cobra.Command, address string) (*grpc.RecipeClient, context.Context, context.CancelFunc, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if address == "" {
		address = cfg.GRPC.Address
	}

	client, err := grpc.NewRecipeClient(address)
	if err != nil {
		return nil, nil, nil, err
	}

	timeout := cfg.GRPC.DialTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	return client, ctx, cancel, nil
}

func newRemoteTopCommand(address *string) *cobra.Command {
	var (
		topN      int
		maxMixers int
	)

	cmd := &cobra.Command{
		Use:   "top <product>",
		Short: "Find the most profitable mixes on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ctx, cancel, err := dialRemote(cmd, *address)
			if err != nil {
				return err
			}
			defer cancel()
			defer client.Close()

			result, err := client.TopRecipes(ctx, args[0], topN, maxMixers)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, result)
			}
			accent.Fprintf(w, "Top %d mixes for %s (up to %d mixers)\n", result.TopN, result.Product, result.MaxMixers)
			printRecipeTable(w, result.Recipes)
			return nil
		},
	}

	cmd.Flags().IntVarP(&topN, "top", "n", 0, "Number of mixes to return (0 = server default)")
	cmd.Flags().IntVarP(&maxMixers, "max-mixers", "m", 0, "Maximum mixers per mix (0 = server default)")
	return cmd
}

func newRemoteEvaluateCommand(address *string) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <product> [mixer...]",
		Short: "Value a mix on the server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ctx, cancel, err := dialRemote(cmd, *address)
			if err != nil {
				return err
			}
			defer cancel()
			defer client.Close()

			recipe, ignored, err := client.Evaluate(ctx, args[0], args[1:])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, map[string]interface{}{
					"recipe":         recipe,
					"ignored_mixers": ignored,
				})
			}
			printRecipe(w, recipe)
			printIgnored(w, ignored)
			return nil
		},
	}
}
