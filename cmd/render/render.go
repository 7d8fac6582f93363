package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/render"
)

var (
	fileFlag   string
	idFlag     string
	styleFlag  string
	coordsFlag bool
)

// RenderCmd renders a level to the terminal for visual inspection.
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a level to the terminal (ASCII/Unicode)",
	Long: `Render a level to the terminal for quick visual inspection.

You can supply a file path with --file (-f) or a level id with --id (-i) (looks in levels/).

Examples:
  level-builder render --id 3f9a1c2e-...
  level-builder render --file levels/level_3f9a1c2e-....json
  level-builder render --id 3f9a1c2e-... --style ascii --coords
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string

		switch {
		case fileFlag != "":
			path = fileFlag
		case idFlag != "":
			p, err := common.LevelFilePath(idFlag)
			if err != nil {
				return err
			}
			path = p
		default:
			return fmt.Errorf("please provide either --file or --id to render a level")
		}

		lvl, err := common.ReadLevel(path)
		if err != nil {
			return fmt.Errorf("failed to read level: %w", err)
		}

		style := render.ParseStyle(styleFlag)
		render.FromLevel(cmd.OutOrStdout(), lvl, style, coordsFlag)
		return nil
	},
}

func init() {
	RenderCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a level JSON file")
	RenderCmd.Flags().StringVarP(&idFlag, "id", "i", "", "level id (looks in levels/)")
	RenderCmd.Flags().StringVar(&styleFlag, "style", "unicode", "glyph style: ascii or unicode")
	RenderCmd.Flags().BoolVar(&coordsFlag, "coords", false, "show row/column coordinates")
}

// GetCommand returns the render command for registration with root
func GetCommand() *cobra.Command {
	return RenderCmd
}
