package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/tau/pkg/gridconf"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "tau",
	Short: "tau - a pixel editor on a polar grid",
	Long: `tau paints cells of a polar grid: concentric rings split into
angular sectors around the center of the canvas.

Examples:
  tau edit                                  # Open the editor window
  tau render --out grid.png                 # Render an empty grid
  tau render --paint 0=red --highlight 16 --out cells.png
  tau cell 400 388                          # Which cell is under a pixel`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/tau/config.sexp)")
}

// loadConfig reads --config, or the per-user file when the flag is unset.
func loadConfig() (*gridconf.Config, error) {
	if configPath != "" {
		cfg, err := gridconf.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		slog.Debug("config loaded", "path", configPath)
		return cfg, nil
	}
	cfg, path, err := gridconf.LoadDefault()
	if err != nil {
		return nil, err
	}
	if path == "" {
		slog.Debug("using built-in config")
	} else {
		slog.Debug("config loaded", "path", path)
	}
	return cfg, nil
}
