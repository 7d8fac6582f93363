package model

import (
	"fmt"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

// fieldSymbols is the fixed "fields" table §6 requires in every level.
var fieldSymbols = map[string]string{
	"snake-head": "X",
	"snake-body": "+",
	"empty":      ".",
}

// Level is the serialized output format §6 describes: a solved grid plus
// the revealed-and-deduced path a human solver can follow to reach it.
type Level struct {
	Width              int               `json:"width"`
	Height             int               `json:"height"`
	MaxAssumptionDepth int               `json:"max_assumption_depth"`
	Fields             map[string]string `json:"fields"`
	LevelRows          []string          `json:"level"`
	InitialOpen        []Point           `json:"initial_open"`
	Moves              []Point           `json:"moves"`
	Author             string            `json:"author"`
	EmptyPolicy        EmptyPolicyDTO    `json:"empty_policy"`
}

// FromSolution builds a Level from a completed (Unknowns() == 0) solution
// state and the planner's (initialOpen, moves) path. The state's two
// SnakeEnd positions are appended to initialOpen, since the endpoints are
// always given away up front regardless of what the planner chose to
// reveal.
func FromSolution(solution *state.State, maxAssumptionDepth int, initialOpen, moves []board.Vec, author string, p EmptyPolicyDTO) (*Level, error) {
	if solution.Unknowns() != 0 {
		return nil, fmt.Errorf("model: FromSolution requires a fully solved state, %d cells still Unknown", solution.Unknowns())
	}

	rows := make([]string, solution.Height())
	for y := 0; y < solution.Height(); y++ {
		row := make([]byte, solution.Width())
		for x := 0; x < solution.Width(); x++ {
			row[x] = cellSymbol(solution.Field(board.Vec{X: x, Y: y}))
		}
		rows[y] = string(row)
	}

	open := make([]Point, 0, len(initialOpen)+2)
	for _, v := range initialOpen {
		open = append(open, Point{X: v.X, Y: v.Y})
	}
	for _, v := range solution.SnakeEnds() {
		open = append(open, Point{X: v.X, Y: v.Y})
	}

	mv := make([]Point, len(moves))
	for i, v := range moves {
		mv[i] = Point{X: v.X, Y: v.Y}
	}

	return &Level{
		Width:              solution.Width(),
		Height:             solution.Height(),
		MaxAssumptionDepth: maxAssumptionDepth,
		Fields:             fieldSymbols,
		LevelRows:          rows,
		InitialOpen:        open,
		Moves:              mv,
		Author:             author,
		EmptyPolicy:        p,
	}, nil
}

func cellSymbol(c state.Cell) byte {
	switch c {
	case state.SnakeEnd:
		return 'X'
	case state.Snake:
		return '+'
	case state.Empty:
		return '.'
	default:
		panic(fmt.Sprintf("model: solved level contains an Unknown cell (%v)", c))
	}
}

// Grid reconstructs cell values from LevelRows, the inverse of the symbol
// table FromSolution wrote. It panics on any rune outside fields' range,
// since LevelRows is expected to always round-trip what FromSolution wrote.
func (l *Level) Grid() [][]state.Cell {
	out := make([][]state.Cell, l.Height)
	for y, row := range l.LevelRows {
		cells := make([]state.Cell, l.Width)
		for x, r := range row {
			switch r {
			case 'X':
				cells[x] = state.SnakeEnd
			case '+':
				cells[x] = state.Snake
			case '.':
				cells[x] = state.Empty
			default:
				panic(fmt.Sprintf("model: unrecognized level symbol %q at (%d,%d)", r, x, y))
			}
		}
		out[y] = cells
	}
	return out
}
