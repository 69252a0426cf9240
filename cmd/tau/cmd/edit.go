package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/tau/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the editor window",
	Long: `Open the polar pixel editor. Click a cell to paint it with the current
color; pick colors from the toolbar or with the keys 1-9. Escape quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		slog.Info("starting editor", "canvas", [2]int{cfg.Width, cfg.Height},
			"sectors", cfg.Grid.RadialDivisions, "rings", cfg.Grid.RingLength)
		return ui.Run(cfg, slog.Default())
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
