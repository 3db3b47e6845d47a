package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	verbose      bool
	jsonOutput   bool
	unlockedOnly bool
	noColor      bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schedule1",
		Short: "Schedule I recipe calculator - value mixes and find the most profitable ones",
		Long: `schedule1 values drug mixes from the game Schedule I and searches for the
most profitable mixer sequences.

Examples:
  schedule1 effects "OG Kush" Cuke Banana
  schedule1 evaluate Methamphetamine Banana Battery "Horse semen"
  schedule1 top "OG Kush" --top-n 3 --max-mixers 4
  schedule1 compare "Cuke Kush=OG Kush:Cuke" "Meth:Battery"
  schedule1 dealers rank Cocaine Cuke
  schedule1 serve`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("S1_CONFIG"),
		"Path to config file (default: search ., ./configs, ~/.schedule1)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&unlockedOnly, "unlocked-only", false,
		"Restrict mixers to those saved with 'config set-unlocked'")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	// Add command groups
	rootCmd.AddCommand(NewEffectsCommand())
	rootCmd.AddCommand(NewEvaluateCommand())
	rootCmd.AddCommand(NewTopCommand())
	rootCmd.AddCommand(NewTopAllCommand())
	rootCmd.AddCommand(NewCompareCommand())
	rootCmd.AddCommand(NewBatchCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewRecipesCommand())
	rootCmd.AddCommand(NewDealersCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewRemoteCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		danger.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
