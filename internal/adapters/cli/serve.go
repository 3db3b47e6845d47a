package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kibahcorps/schedule1-go/internal/adapters/grpc"
	"github.com/kibahcorps/schedule1-go/internal/adapters/httpapi"
	"github.com/kibahcorps/schedule1-go/internal/adapters/metrics"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/pidfile"
)

// NewServeCommand runs the HTTP API and the gRPC recipe service
func NewServeCommand() *cobra.Command {
	var withoutGRPC bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and the gRPC recipe service",
		Long: `Run the long-lived server process.

The JSON API listens on api.address and the gRPC recipe service on grpc.address.
Only one server may run per PID file. SIGINT or SIGTERM shuts both down gracefully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			cfg := s.app.Config
			pf := pidfile.New(cfg.Server.PIDFile)
			if err := pf.Acquire(); err != nil {
				return err
			}
			defer func() {
				if err := pf.Release(); err != nil {
					warn.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
				}
			}()

			ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := s.app.Logger.Slog()
			api := httpapi.New(cfg.API, logger, s.app.Mediator, httpapi.Options{
				Metrics:        s.app.APIMetrics,
				MetricsPath:    cfg.Metrics.Path,
				MetricsHandler: metrics.Handler(),
			})

			w := cmd.OutOrStdout()
			accent.Fprintln(w, "Schedule I server")
			fmt.Fprintf(w, "  HTTP API: %s\n", cfg.API.Address)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return api.ListenAndServe(gctx, cfg.Server.ShutdownTimeout)
			})

			if !withoutGRPC {
				recipeServer, err := grpc.NewRecipeServer(s.app.Mediator, cfg.GRPC.Address, logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "  gRPC:     %s\n", recipeServer.Addr())
				g.Go(func() error {
					return recipeServer.Serve(gctx)
				})
			}

			if err := g.Wait(); err != nil && err != context.Canceled {
				return err
			}
			neutral.Fprintln(w, "Server stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withoutGRPC, "no-grpc", false, "Serve only the JSON API")
	return cmd
}
