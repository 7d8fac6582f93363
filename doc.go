// Package main provides the level-builder CLI tool for the snake logic
// puzzle.
//
// # Overview
//
// The level-builder generates, validates, renders, and repairs puzzle
// levels for a grid logic game: each cell is Snake, SnakeEnd, or Empty,
// and a solved board is a single path between its two SnakeEnd cells
// whose Empty regions obey a configurable size policy. It wraps the
// pure core (board/unionfind/policy/state/solver/planner) in a
// dependency-rich, file-backed tool: the single source of truth for
// level generation and validation, independent of any game client.
//
// # Key Features
//
//   - Level generation via constraint-propagation solving and a
//     human-followable reveal path planner
//   - Round-trip validation that a level's recorded solution replays
//     to the same solved, connected board
//   - ASCII/Unicode rendering for debugging and documentation
//   - Repair of corrupted or unsolvable level files
//   - Concurrent batch generation of named packs
//   - Live streaming of in-progress generation over a websocket
//   - Manual fixpoint propagation on a hand-built board pattern
//
// # Installation & Building
//
//	go build
//	./level-builder --help
//
// # Commands
//
// ## generate
//
// Generate new puzzle levels by picking a board size and endpoint pair
// for a difficulty preset, solving it, planning a reveal path, and
// writing the result to levels/.
//
// Examples:
//
//	level-builder generate --count 50 --preset nurturing
//	level-builder gen -c 20 -v
//	level-builder g --pack garden-1 --preset flourishing -c 10
//	level-builder g --seed 12345 --watch localhost:8089
//
// Flags:
//
//	-c, --count      Number of levels to generate (default: 50)
//	-p, --preset     Difficulty preset
//	-s, --seed       Base seed for deterministic generation
//	    --pack       Record generated levels under this pack name
//	    --overwrite  Overwrite existing level files
//	    --watch      Stream each attempt's board over a websocket
//
// ## validate
//
// Validate puzzle levels against the replay round-trip property:
// reconstructs a level's recorded solution independently from its
// grid, replays its initial_open and moves through fixpoint
// propagation, and checks that the replay reaches the same solved,
// connected board.
//
// Examples:
//
//	level-builder validate
//	level-builder val --file levels/level_3f9a1c2e-....json
//
// ## render
//
// Render a level as an ASCII or Unicode visualization for quick
// inspection.
//
// Examples:
//
//	level-builder render --id 3f9a1c2e-...
//	level-builder render --file levels/level_3f9a1c2e-....json --style ascii --coords
//
// ## repair
//
// Scan a levels directory and regenerate any file that fails to parse
// or fails the round-trip validator. A regenerated level gets a freshly
// minted id, since a corrupted file's original generation parameters
// can't be recovered from its filename alone.
//
// Examples:
//
//	level-builder repair --dry-run
//	level-builder repair --directory levels
//
// ## batch
//
// Generate a whole named pack of levels against one difficulty preset,
// across a worker pool, recording each into data/packs.json.
//
// Examples:
//
//	level-builder batch --pack garden-1 --preset nurturing --count 21
//	level-builder batch --pack garden-3 --preset sprout --overwrite --concurrency 4
//
// ## solve
//
// Run fixpoint propagation on a literal board pattern read from a file
// or stdin, for manually checking a hand-built or hand-solved board.
//
// Examples:
//
//	level-builder solve --file board.txt
//	cat board.txt | level-builder solve --fix-size 5
//
// ## clean
//
// Remove generated level files, and optionally the packs registry.
//
// Examples:
//
//	level-builder clean
//	level-builder clean --packs
//
// # Architecture
//
//	cmd/              - Cobra command implementations
//	  ├─ generate/    - Level generation
//	  ├─ validate/    - Round-trip validation
//	  ├─ render/      - ASCII/Unicode rendering
//	  ├─ repair/      - Corrupted-file repair
//	  ├─ batch/       - Concurrent pack generation
//	  ├─ solve/       - Manual fixpoint propagation
//	  └─ clean/       - Cleanup
//	pkg/
//	  ├─ board/       - Grid primitives (Vec, Board[T], BFS Explorer)
//	  ├─ unionfind/   - Weighted union-find with payload merge
//	  ├─ policy/      - Empty-region-size policies
//	  ├─ state/       - Partial board state and its invariants
//	  ├─ solver/      - Fixpoint propagation and branching search
//	  ├─ planner/     - Human-followable reveal path search
//	  ├─ model/       - Level/Pack/Registry JSON models
//	  ├─ generator/   - Orchestrates the core into finished levels
//	  ├─ validator/   - Replay round-trip validation
//	  ├─ render/      - Grid rendering
//	  ├─ batch/       - Worker-pool pack generation
//	  ├─ liveserve/   - Websocket broadcast of generation progress
//	  ├─ common/      - Logging, paths, level I/O, backups
//	  └─ ui/          - Spinner wrapper for long-running commands
//
// # Configuration
//
// ## Global Flags (available for all commands)
//
//	-v, --verbose              Enable verbose output for debugging
//	-j, --workers string       Number of concurrent workers (integer, 'half', or 'full')
//	-w, --working-dir string   Working directory for asset paths
package main
