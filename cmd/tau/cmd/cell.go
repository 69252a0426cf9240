package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/tau/pkg/polar"
	"github.com/OpenTraceLab/tau/pkg/raster"
)

var cellCmd = &cobra.Command{
	Use:   "cell X Y",
	Short: "Show which cell a raster point falls in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad x: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad y: %w", err)
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		grid, err := polar.NewGrid(cfg.Grid, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		index := grid.CellIndexAt(x, y)
		ring, sector := grid.Ring(index), grid.Sector(index)
		fmt.Fprintf(out, "Point:   %g,%g\n", x, y)
		fmt.Fprintf(out, "Index:   %d\n", index)
		fmt.Fprintf(out, "Ring:    %d of %d\n", ring, cfg.Grid.RingLength)
		fmt.Fprintf(out, "Sector:  %d of %d\n", sector, cfg.Grid.RadialDivisions)
		if !grid.Contains(index) {
			fmt.Fprintln(out, "Inside:  no")
			return nil
		}
		cx, cy := grid.CellCenter(ring, sector)
		fmt.Fprintln(out, "Inside:  yes")
		fmt.Fprintf(out, "Center:  %.2f,%.2f\n", cx, cy)
		fmt.Fprintf(out, "Pattern: %s\n", raster.PatternColor(index, cfg.Grid.RadialDivisions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cellCmd)
}
