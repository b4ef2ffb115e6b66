// cmd/meal-balance/root.go
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mcp-meal-balance/internal/catalog"
	"mcp-meal-balance/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "meal-balance",
	Short: "Build a meal and score its nutritional balance",
	Long: `meal-balance is a small nutrition game. Pick foods to build a meal and
the meal is scored against the recommended per-meal intake of a target
group (child, adult-male, adult-female, elderly).`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded
		setupLogging(cfg)

		return catalog.Validate()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.meal-balance.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newFoodsCmd())
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func setupLogging(c *config.Config) {
	level := c.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
