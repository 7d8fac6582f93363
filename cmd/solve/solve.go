package solve

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/policy"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/render"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/solver"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

var (
	fileFlag   string
	fixSize    int
	styleFlag  string
	coordsFlag bool
)

// solveCmd feeds a literal board pattern through fixpoint propagation, for
// manually checking a hand-built or hand-solved board the way the core's
// own worked examples do.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run fixpoint propagation on a literal board pattern",
	Long: `Read a literal board pattern and run solver.FillObvious on it.

Each line of input is one board row. Recognized glyphs per cell:
  .  Empty
  ?  Unknown
  S  Snake
  E  SnakeEnd (exactly two required)

Reads from --file, or stdin if --file is not given.

Examples:
  level-builder solve --file board.txt
  cat board.txt | level-builder solve --fix-size 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var r *bufio.Scanner
		if fileFlag != "" {
			f, err := os.Open(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", fileFlag, err)
			}
			defer f.Close()
			r = bufio.NewScanner(f)
		} else {
			r = bufio.NewScanner(os.Stdin)
		}

		rows, err := readRows(r)
		if err != nil {
			return err
		}

		pol := policy.NewNone()
		if fixSize > 0 {
			pol = policy.NewFix(fixSize)
		}

		s, err := buildState(rows, pol)
		if err != nil {
			return err
		}

		var moves []board.Vec
		result := solver.FillObvious(s, &moves)

		style := render.ParseStyle(styleFlag)
		render.FromState(cmd.OutOrStdout(), s, style, coordsFlag)

		switch result.Outcome {
		case solver.Contradiction:
			common.Warning("fill_obvious: contradiction, this board cannot be completed")
		case solver.Solved:
			common.Info("fill_obvious: solved in %d forced moves", len(moves))
		case solver.Ok:
			common.Info("fill_obvious: reached a fixpoint with %d unknowns remaining (%d forced moves applied)", s.Unknowns(), len(moves))
		}
		return nil
	},
}

func readRows(scanner *bufio.Scanner) ([]string, error) {
	var rows []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read board pattern: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no board rows given")
	}
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("inconsistent row width: %q vs %q", row, rows[0])
		}
	}
	return rows, nil
}

func buildState(rows []string, pol policy.Policy) (*state.State, error) {
	width := len(rows[0])
	height := len(rows)

	var ends []board.Vec
	for y, row := range rows {
		for x, c := range row {
			if c == 'E' {
				ends = append(ends, board.Vec{X: x, Y: y})
			}
		}
	}
	if len(ends) != 2 {
		return nil, fmt.Errorf("expected exactly 2 'E' (SnakeEnd) cells, found %d", len(ends))
	}

	s := state.New(width, height, ends[0], ends[1], pol)

	for y, row := range rows {
		for x, c := range row {
			pos := board.Vec{X: x, Y: y}
			if s.Field(pos) != state.Unknown {
				continue // the two endpoints are already placed by state.New
			}
			switch c {
			case '.':
				s.Set(pos, state.Empty)
			case 'S':
				s.Set(pos, state.Snake)
			case '?':
				// leave Unknown
			case 'E':
				return nil, fmt.Errorf("more than 2 'E' cells encountered at %v", pos)
			default:
				return nil, fmt.Errorf("unrecognized glyph %q at %v", strconv.QuoteRune(c), pos)
			}
		}
	}
	return s, nil
}

func init() {
	solveCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a board pattern file (default: stdin)")
	solveCmd.Flags().IntVar(&fixSize, "fix-size", 0, "use a Fix(n) empty-region policy instead of no policy")
	solveCmd.Flags().StringVar(&styleFlag, "style", "unicode", "glyph style: ascii or unicode")
	solveCmd.Flags().BoolVar(&coordsFlag, "coords", false, "show row/column coordinates")
}

// GetCommand returns the solve command for registration with root
func GetCommand() *cobra.Command {
	return solveCmd
}
