package ui

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/CirKit/internal/config"
	"github.com/OpenTraceLab/CirKit/internal/logging"
)

// Options configure a UI session.
type Options struct {
	Config     config.Config
	ConfigPath string

	// ScenePath is opened at startup. When empty the last scene from the
	// config is reopened if it still exists.
	ScenePath string
	// Watch reloads ScenePath whenever it changes on disk.
	Watch bool

	Version string
	Logger  *zap.Logger
	Sink    *logging.Sink
}

// Run launches the Gio UI and blocks until the window closes.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("CirKit"),
			app.Size(unit.Dp(float32(opts.Config.Window.Width)), unit.Dp(float32(opts.Config.Window.Height))),
		)
		ui := New(w, opts)
		code := 0
		if err := ui.Run(); err != nil {
			opts.Logger.Error("ui stopped", zap.Error(err))
			code = 1
		}
		_ = opts.Logger.Sync()
		os.Exit(code)
	}()

	app.Main()
	return nil
}
