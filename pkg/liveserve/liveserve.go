// Package liveserve broadcasts a generation run's intermediate board states
// to any connected websocket client, for watching solver/planner progress
// live instead of only seeing the finished level. Optional: nothing in the
// generator depends on this package, a caller wires it in only when it
// wants to watch.
package liveserve

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

// Frame is one broadcast step: the board rendered in the same row-of-symbols
// form as a stored level's "level" field, plus an unknown ('?') symbol for
// cells FromSolution would refuse to encode.
type Frame struct {
	Step   int      `json:"step"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"level"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Broadcaster fans a sequence of Frames out to every currently connected
// websocket client. A client that connects mid-run just misses earlier
// frames; there's no replay buffer.
type Broadcaster struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	step    int
}

// New returns an empty Broadcaster with no connected clients yet.
func New() *Broadcaster {
	return &Broadcaster{clients: make(map[*websocket.Conn]struct{})}
}

// Handler upgrades an HTTP request to a websocket and registers the
// resulting connection to receive every subsequent Send. Wire it to an
// *http.ServeMux under whatever path you like (e.g. "/watch").
func (b *Broadcaster) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		common.Warning("liveserve: upgrade failed: %v", err)
		return
	}

	b.mu.Lock()
	b.clients[conn] = struct{}{}
	b.mu.Unlock()

	// Drain and discard whatever the client sends, so we notice it
	// disconnecting and can drop it from the client set.
	go func() {
		defer b.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (b *Broadcaster) drop(conn *websocket.Conn) {
	b.mu.Lock()
	delete(b.clients, conn)
	b.mu.Unlock()
	conn.Close()
}

// Send renders s as a Frame and broadcasts it to every connected client. A
// client whose write fails is dropped; Send never returns an error itself,
// since one dead client shouldn't interrupt generation.
func (b *Broadcaster) Send(s *state.State) {
	b.mu.Lock()
	b.step++
	frame := Frame{
		Step:   b.step,
		Width:  s.Width(),
		Height: s.Height(),
		Rows:   rowsForState(s),
	}
	data, err := json.Marshal(frame)
	if err != nil {
		b.mu.Unlock()
		common.Warning("liveserve: failed to marshal frame: %v", err)
		return
	}

	var dead []*websocket.Conn
	for conn := range b.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		delete(b.clients, conn)
	}
	b.mu.Unlock()

	for _, conn := range dead {
		conn.Close()
	}
}

// ListenAndServe mounts the broadcaster at path on addr and blocks until
// the server stops or errors.
func (b *Broadcaster) ListenAndServe(addr, path string) error {
	mux := http.NewServeMux()
	mux.HandleFunc(path, b.Handler)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("liveserve: server stopped: %w", err)
	}
	return nil
}

func rowsForState(s *state.State) []string {
	rows := make([]string, s.Height())
	for y := 0; y < s.Height(); y++ {
		row := make([]byte, s.Width())
		for x := 0; x < s.Width(); x++ {
			row[x] = symbolFor(s.Field(board.Vec{X: x, Y: y}))
		}
		rows[y] = string(row)
	}
	return rows
}

func symbolFor(c state.Cell) byte {
	switch c {
	case state.SnakeEnd:
		return 'X'
	case state.Snake:
		return '+'
	case state.Empty:
		return '.'
	default:
		return '?'
	}
}
