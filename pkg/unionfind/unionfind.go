// Package unionfind implements a weighted disjoint-set structure over a
// fixed-size grid of cells, where each set additionally carries a mergeable
// payload. It backs state.State's region tracking: while a set represents
// an empty region, its payload is (size, unknown-neighbor-count); while it
// represents a snake segment, only size matters and the payload is unused.
//
// Merging is union-by-size with a deterministic smaller-id-root tie-break,
// matching the original Rust implementation's BoardUnionFind. There is no
// split operation; callers (state.State) must never merge sets of
// different kinds.
package unionfind

// Payload is a user-supplied datum merged commutatively and associatively
// when two sets are unioned.
type Payload interface {
	Merge(other Payload) Payload
}

// IntPayload is a non-negative integer payload whose merge is addition —
// the concrete instantiation this core uses for both empty-region size
// bookkeeping and the unknown-neighbor-incidence count.
type IntPayload int

// Merge implements Payload by adding the two payloads.
func (p IntPayload) Merge(other Payload) Payload {
	return p + other.(IntPayload)
}

type entry struct {
	parent  int
	size    int
	payload Payload
}

// UnionFind is a disjoint-set structure over width*height grid cells,
// indexed by flat row-major id (matching board.Board's layout).
type UnionFind struct {
	entries []entry
}

// New creates a union-find over n singleton cells, each with zero payload.
func New(n int, zero Payload) *UnionFind {
	entries := make([]entry, n)
	for i := range entries {
		entries[i] = entry{parent: i, size: 1, payload: zero}
	}
	return &UnionFind{entries: entries}
}

// Find returns the root id of the set containing id, compressing the path
// as it walks up.
func (u *UnionFind) Find(id int) int {
	root := id
	for u.entries[root].parent != root {
		root = u.entries[root].parent
	}
	for u.entries[id].parent != root {
		next := u.entries[id].parent
		u.entries[id].parent = root
		id = next
	}
	return root
}

// Merge unions the sets containing a and b. If they are already the same
// set, it returns (false, that root) without modification. Otherwise the
// smaller set is attached under the larger (ties broken by the smaller-id
// root winning), sizes are added, and payloads are combined via Merge.
// It returns (true, the resulting root).
func (u *UnionFind) Merge(a, b int) (bool, int) {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false, ra
	}

	big, small := ra, rb
	if u.entries[rb].size > u.entries[ra].size ||
		(u.entries[rb].size == u.entries[ra].size && rb < ra) {
		big, small = rb, ra
	}

	u.entries[small].parent = big
	u.entries[big].size += u.entries[small].size
	u.entries[big].payload = u.entries[big].payload.Merge(u.entries[small].payload)
	return true, big
}

// Size returns the size of the set containing id.
func (u *UnionFind) Size(id int) int {
	return u.entries[u.Find(id)].size
}

// GetPayload returns the payload of the set containing id.
func (u *UnionFind) GetPayload(id int) Payload {
	return u.entries[u.Find(id)].payload
}

// SetPayload overwrites the payload of the set containing id.
func (u *UnionFind) SetPayload(id int, v Payload) {
	u.entries[u.Find(id)].payload = v
}

// Clone returns a deep copy of the union-find structure.
func (u *UnionFind) Clone() *UnionFind {
	entries := make([]entry, len(u.entries))
	copy(entries, u.entries)
	return &UnionFind{entries: entries}
}
