package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
	"github.com/OpenTraceLab/CirKit/pkg/scenefile"
	"github.com/OpenTraceLab/CirKit/pkg/script"
)

var (
	replayWidth  float64
	replayHeight float64
	replayOut    string
	replayJSON   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.ckt>",
	Short: "Run an action script against an empty scene",
	Long: `Apply the commands of an action script to a fresh scene without opening a
window, then print the resulting components and the properties panel.

Examples:
  cirkit replay steps.ckt
  cirkit replay steps.ckt --width 1024 --height 768 --out result.cirkit`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("replay: read script: %w", err)
	}

	store := scene.NewStore()
	store.Dispatch(scene.Resize{Width: replayWidth, Height: replayHeight})
	if err := script.Run(store, args[0], string(src)); err != nil {
		return err
	}
	snap := store.Snapshot()
	logger.Debug("script replayed",
		zap.String("script", args[0]),
		zap.Uint64("version", snap.Version),
		zap.Int("components", len(snap.Symbols)))

	var id uuid.UUID
	if replayOut != "" {
		doc := scenefile.FromSnapshot(snap, uuid.Nil)
		if err := scenefile.Save(replayOut, doc); err != nil {
			return err
		}
		id = doc.UUID
		logger.Info("scene saved", zap.String("path", replayOut))
	}

	out := cmd.OutOrStdout()
	info := summarize(snap.Symbols, snap.Transform, snap.Selection, id)
	if replayJSON {
		return writeJSON(out, struct {
			SceneInfo
			Properties scene.Properties `json:"properties"`
		}{info, scene.DescribeSelection(snap)})
	}
	printSceneInfo(out, info)
	fmt.Fprintln(out)
	printProperties(out, scene.DescribeSelection(snap))
	if replayOut != "" {
		fmt.Fprintf(out, "\nSaved %s\n", replayOut)
	}
	return nil
}

func init() {
	replayCmd.Flags().Float64Var(&replayWidth, "width", 800, "canvas width in pixels")
	replayCmd.Flags().Float64Var(&replayHeight, "height", 600, "canvas height in pixels")
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "", "save the resulting scene to this file")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(replayCmd)
}
