package ui

import (
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/OpenTraceLab/tau/pkg/gridconf"
)

// Run opens the editor window and blocks until it closes.
func Run(cfg *gridconf.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	a, err := New(new(app.Window), cfg, logger)
	if err != nil {
		return err
	}

	go func() {
		a.window.Option(
			app.Title("tau"),
			app.Size(unit.Dp(float32(cfg.Width)), unit.Dp(float32(cfg.Height+toolbarHeight+statusHeight))),
		)
		if err := a.Run(); err != nil {
			logger.Error("ui stopped", "err", err)
			os.Exit(1)
		}
		logger.Info("window closed")
		os.Exit(0)
	}()

	app.Main()
	return nil
}
