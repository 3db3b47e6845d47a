package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"prefs"},
		Short:   "Show configuration and manage preferences",
		Long: `Show configuration and manage user preferences.

Configuration is loaded from multiple sources with priority:
1. Environment variables (S1_* prefix)
2. Config file (--config or config.yaml)
3. Default values

Preferences (default product, unlocked mixers) are stored in ~/.schedule1/preferences.json

Examples:
  schedule1 config show
  schedule1 config set-product "OG Kush"
  schedule1 config set-unlocked Cuke,Banana,Paracetamol
  schedule1 config clear`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetProductCommand())
	cmd.AddCommand(newConfigSetUnlockedCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				warn.Fprintf(w, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(w, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			prefs, err := handler.Load()
			if err != nil {
				warn.Fprintf(w, "Warning: Failed to load preferences: %v\n\n", err)
				prefs = &config.UserConfig{}
			}

			if jsonOutput {
				return printJSON(w, map[string]interface{}{
					"config":      cfg,
					"preferences": prefs,
				})
			}

			accent.Fprintln(w, "Schedule I Configuration")
			fmt.Fprintln(w, "========================")

			fmt.Fprintln(w, "Preferences:")
			fmt.Fprintf(w, "  File:             %s\n", handler.Path())
			fmt.Fprintf(w, "  Default Product:  %s\n", orNotSet(prefs.DefaultProduct))
			fmt.Fprintf(w, "  Unlocked Mixers:  %s\n", orNotSet(strings.Join(prefs.UnlockedMixers, ", ")))

			fmt.Fprintln(w, "\nCatalog:")
			fmt.Fprintf(w, "  Game Data:        %s\n", orBuiltin(cfg.Catalog.Path))
			fmt.Fprintf(w, "  Dealers:          %s\n", orBuiltin(cfg.Catalog.DealersPath))

			fmt.Fprintln(w, "\nSearch:")
			fmt.Fprintf(w, "  Top N:            %d\n", cfg.Search.TopN)
			fmt.Fprintf(w, "  Max Mixers:       %d\n", cfg.Search.MaxMixers)
			fmt.Fprintf(w, "  Workers:          %d (products: %d)\n", cfg.Search.Workers, cfg.Search.ProductWorkers)
			fmt.Fprintf(w, "  Beam Factor:      %d\n", cfg.Search.BeamFactor)
			fmt.Fprintf(w, "  Resolver:         %s\n", cfg.Search.Resolver)
			fmt.Fprintf(w, "  Cache:            %t (ttl %s)\n", cfg.Cache.Enabled, cfg.Cache.TTL)

			fmt.Fprintln(w, "\nDatabase:")
			fmt.Fprintf(w, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(w, "  Path:             %s\n", cfg.Database.Path)
			case cfg.Database.URL != "":
				fmt.Fprintf(w, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			default:
				fmt.Fprintf(w, "  Host:             %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Fprintf(w, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(w, "  User:             %s\n", cfg.Database.User)
			}
			fmt.Fprintf(w, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)

			fmt.Fprintln(w, "\nServer:")
			fmt.Fprintf(w, "  HTTP API:         %s\n", cfg.API.Address)
			fmt.Fprintf(w, "  Rate Limit:       %d req/s (burst: %d)\n",
				cfg.API.RateLimit.Requests, cfg.API.RateLimit.Burst)
			fmt.Fprintf(w, "  Request Timeout:  %s\n", cfg.API.RequestTimeout)
			fmt.Fprintf(w, "  gRPC:             %s\n", cfg.GRPC.Address)
			fmt.Fprintf(w, "  PID File:         %s\n", cfg.Server.PIDFile)
			fmt.Fprintf(w, "  Metrics:          %t (%s)\n", cfg.Metrics.Enabled, cfg.Metrics.Path)

			fmt.Fprintln(w, "\nLogging:")
			fmt.Fprintf(w, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(w, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(w, "  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

func newConfigSetProductCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-product <product>",
		Short: "Set the product used when commands are given none",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			if !s.app.Catalog.HasProduct(args[0]) {
				return fmt.Errorf("unknown product %q", args[0])
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := handler.SetDefaultProduct(args[0]); err != nil {
				return fmt.Errorf("failed to set default product: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ Default product set to %s\n", args[0])
			return nil
		},
	}
}

func newConfigSetUnlockedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-unlocked <mixer,mixer,...>",
		Short: "Record the mixers unlocked in your game",
		Long: `Record the mixers you have unlocked. Pass --unlocked-only to any search
command to restrict it to these mixers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			mixers := splitList(args[0])
			var unknown []string
			for _, m := range mixers {
				if _, ok := s.app.Catalog.Mixer(m); !ok {
					unknown = append(unknown, m)
				}
			}
			if len(unknown) > 0 {
				return fmt.Errorf("unknown mixers: %s", strings.Join(unknown, ", "))
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := handler.SetUnlockedMixers(mixers); err != nil {
				return fmt.Errorf("failed to set unlocked mixers: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ %d unlocked mixers saved\n", len(mixers))
			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := handler.Clear(); err != nil {
				return fmt.Errorf("failed to clear preferences: %w", err)
			}

			success.Fprintln(cmd.OutOrStdout(), "✓ Preferences cleared")
			return nil
		},
	}
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func orBuiltin(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}
