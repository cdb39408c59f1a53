package cmd

import (
	"context"
	"log/slog"

	"github.com/go-leo/patterns/menu"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Interactive tour of classic design patterns",
	Long: `patterns shows ten classic design patterns, one small demo each.

Run without arguments for the interactive menu, or pick a demo directly:

  patterns run fold
  patterns run 9`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMenu(cmd)
		if err != nil {
			return err
		}
		return m.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "menu config file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dispatch details to stderr")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func newMenu(cmd *cobra.Command) (*menu.Menu, error) {
	logger := newLogger(cmd)
	opts := []menu.Option{
		menu.Entries(catalog()...),
		menu.Logger(logger),
		menu.Decorate(menu.Recover()),
	}
	if cfgFile != "" {
		cfg, err := menu.LoadConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("config loaded", slog.String("path", cfgFile))
		opts = append(opts, cfg.Options()...)
	}
	return menu.New(opts...)
}
