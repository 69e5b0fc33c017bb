package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/CirKit/pkg/scenefile"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <scene.cirkit>",
	Short: "Summarize a saved scene",
	Long: `Print the components, view transform and bounds of a scene file.

Supports JSON output for scripts and other tools.

Examples:
  cirkit info board.cirkit
  cirkit info board.cirkit --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := scenefile.Load(args[0])
		if err != nil {
			return err
		}
		info := summarize(doc.Symbols, doc.Transform, "", doc.UUID)
		if infoJSON {
			return writeJSON(cmd.OutOrStdout(), info)
		}
		printSceneInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(infoCmd)
}
