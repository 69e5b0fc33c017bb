package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	appui "github.com/OpenTraceLab/CirKit/internal/ui"
)

var watchScene bool

var uiCmd = &cobra.Command{
	Use:   "ui [scene.cirkit]",
	Short: "Launch the circuit editor",
	Long: `Launch the CirKit editor window. When a scene file is given it is opened
at startup; with --watch it is reloaded whenever it changes on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path := loadConfig()
		opts := appui.Options{
			Config:     cfg,
			ConfigPath: path,
			Watch:      watchScene,
			Version:    rootCmd.Version,
			Logger:     logger,
			Sink:       logSink,
		}
		if len(args) == 1 {
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("ui: resolve %s: %w", args[0], err)
			}
			opts.ScenePath = abs
		}
		if watchScene && opts.ScenePath == "" {
			return errors.New("ui: --watch needs a scene file")
		}
		return appui.Run(opts)
	},
}

func init() {
	uiCmd.Flags().BoolVar(&watchScene, "watch", false, "reload the scene file when it changes")
	rootCmd.AddCommand(uiCmd)
}
