// Package render draws a snake board as a bordered text grid, either plain
// ASCII or Unicode box-drawing glyphs, for terminal inspection and for the
// CLI's render command.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/model"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

// Style selects the glyph set ToWriter draws with.
type Style int

const (
	ASCII Style = iota
	Unicode
)

// ParseStyle maps a CLI flag value ("ascii" or "unicode", case-insensitive)
// to a Style, defaulting to ASCII for anything else.
func ParseStyle(s string) Style {
	if strings.EqualFold(s, "unicode") {
		return Unicode
	}
	return ASCII
}

// cellAt abstracts the one thing the glyph logic needs: a cell value at a
// coordinate, with bounds-checking. It lets ToWriter draw both a live
// state.State (mid-solve, can hold Unknown cells) and a plain grid loaded
// from a serialized model.Level (always fully solved) through one glyph
// table.
type cellAt func(x, y int) state.Cell

// ToWriter prints a width x height board as a bordered grid to w, reading
// cell values through at. showCoords adds row/column rulers along the left
// and bottom edges.
func ToWriter(w io.Writer, width, height int, at cellAt, style Style, showCoords bool) {
	border := func() {
		fmt.Fprint(w, "   +")
		for x := 0; x < width; x++ {
			fmt.Fprint(w, "--")
		}
		fmt.Fprint(w, "+\n")
	}

	border()
	for y := 0; y < height; y++ {
		if showCoords {
			fmt.Fprintf(w, "%2d ", y)
		} else {
			fmt.Fprint(w, "   ")
		}
		fmt.Fprint(w, "|")
		for x := 0; x < width; x++ {
			fmt.Fprintf(w, "%1s ", glyph(at, x, y, width, height, style))
		}
		fmt.Fprint(w, "|\n")
	}
	border()

	if showCoords {
		fmt.Fprint(w, "   ")
		for x := 0; x < width; x++ {
			fmt.Fprintf(w, "%2d", x%100)
		}
		fmt.Fprint(w, "\n")
	}
}

// FromState renders a live solver/planner state.State.
func FromState(w io.Writer, s *state.State, style Style, showCoords bool) {
	at := func(x, y int) state.Cell {
		return s.Field(board.Vec{X: x, Y: y})
	}
	ToWriter(w, s.Width(), s.Height(), at, style, showCoords)
}

// FromLevel renders a serialized model.Level's solved grid.
func FromLevel(w io.Writer, lvl *model.Level, style Style, showCoords bool) {
	grid := lvl.Grid()
	at := func(x, y int) state.Cell {
		return grid[y][x]
	}
	ToWriter(w, lvl.Width, lvl.Height, at, style, showCoords)
}

// glyph picks the character drawn at (x,y): a direction arrow for a
// SnakeEnd (pointing at its one snake-kind neighbor), a connector glyph for
// a Snake cell derived from which of its neighbors are snake-kind, '.' for
// Empty, and a blank for any cell still Unknown.
func glyph(at cellAt, x, y, width, height int, style Style) string {
	switch at(x, y) {
	case state.Empty:
		return dot(style)
	case state.Unknown:
		return " "
	case state.SnakeEnd:
		return endGlyph(at, x, y, width, height, style)
	case state.Snake:
		return connectorGlyph(neighborMask(at, x, y, width, height), style)
	default:
		return "?"
	}
}

func dot(style Style) string {
	if style == Unicode {
		return "·"
	}
	return "."
}

const (
	up = 1 << iota
	right
	down
	left
)

// neighborMask reports, as an up/right/down/left bitmask, which of
// (x,y)'s 4-neighbors hold a snake-kind cell.
func neighborMask(at cellAt, x, y, width, height int) int {
	mask := 0
	if y > 0 && at(x, y-1).IsSnake() {
		mask |= up
	}
	if x < width-1 && at(x+1, y).IsSnake() {
		mask |= right
	}
	if y < height-1 && at(x, y+1).IsSnake() {
		mask |= down
	}
	if x > 0 && at(x-1, y).IsSnake() {
		mask |= left
	}
	return mask
}

// endGlyph renders a SnakeEnd as an arrow pointing toward its one
// snake-kind neighbor, or a bare endpoint marker if it has none yet (an
// isolated endpoint in a still-partial board).
func endGlyph(at cellAt, x, y, width, height int, style Style) string {
	mask := neighborMask(at, x, y, width, height)
	ascii := map[int]string{up: "^", right: ">", down: "v", left: "<"}
	unicode := map[int]string{up: "↑", right: "→", down: "↓", left: "←"}
	table := ascii
	if style == Unicode {
		table = unicode
	}
	if g, ok := table[mask]; ok {
		return g
	}
	if style == Unicode {
		return "●"
	}
	return "X"
}

// connectorGlyph maps a neighbor bitmask to a box-drawing or ASCII pipe
// glyph. A Snake cell always has exactly two snake-kind neighbors once the
// board is complete, but partial boards can show one or zero, so every
// mask up to 15 needs a sensible glyph rather than just the 6
// two-bit "through" shapes.
func connectorGlyph(mask int, style Style) string {
	if style != Unicode {
		switch {
		case mask == (up|down), mask == up, mask == down:
			return "|"
		case mask == (left|right), mask == left, mask == right:
			return "-"
		case mask == 0:
			return "o"
		default:
			return "+"
		}
	}

	table := map[int]string{
		up | down:                "│",
		left | right:             "─",
		up:                       "│",
		down:                     "│",
		left:                     "─",
		right:                    "─",
		up | right:               "└",
		right | down:             "┌",
		down | left:              "┐",
		left | up:                "┘",
		up | right | down:        "├",
		right | down | left:      "┬",
		down | left | up:         "┤",
		left | up | right:        "┴",
		up | right | down | left: "┼",
	}
	if g, ok := table[mask]; ok {
		return g
	}
	return "●"
}
