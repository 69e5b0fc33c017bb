package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/CirKit/internal/config"
	"github.com/OpenTraceLab/CirKit/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger  *zap.Logger
	logSink = &logging.Sink{}
)

var rootCmd = &cobra.Command{
	Use:   "cirkit",
	Short: "CirKit - drag-and-drop circuit builder",
	Long: `CirKit lets you place, move, rotate and inspect circuit symbols
(resistors, capacitors, inductors, batteries and switches) on a pannable,
zoomable canvas.

Examples:
  cirkit ui                           # Launch the editor
  cirkit ui board.cirkit --watch      # Open a scene and reload it on change
  cirkit replay steps.ckt --out a.cirkit
  cirkit info board.cirkit --json`,
	Version:      "0.3.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose, logSink)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the settings file named by --config, or the platform
// default. The returned path is empty when settings must not be written back.
func loadConfig() (config.Config, string) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("no config location, using defaults", zap.Error(err))
			return config.Default(), ""
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("ignoring unreadable config", zap.String("path", path), zap.Error(err))
		return config.Default(), ""
	}
	return cfg, path
}

func init() {
	// Gio reads the locale from LANG
	if lang := os.Getenv("LANG"); lang == "" || lang == "C" {
		os.Setenv("LANG", "en_US.UTF-8")
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default: user config dir)")
}
