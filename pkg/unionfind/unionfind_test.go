package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCombinesSizeAndPayload(t *testing.T) {
	u := New(4, IntPayload(0))
	u.SetPayload(0, IntPayload(3))
	u.SetPayload(1, IntPayload(5))

	merged, root := u.Merge(0, 1)
	require.True(t, merged)

	assert.Equal(t, 2, u.Size(root))
	assert.Equal(t, IntPayload(8), u.GetPayload(root))
	assert.Equal(t, u.Find(0), u.Find(1))
}

func TestMergeSameSetIsNoop(t *testing.T) {
	u := New(3, IntPayload(0))
	u.Merge(0, 1)

	merged, root := u.Merge(0, 1)
	assert.False(t, merged)
	assert.Equal(t, u.Find(0), root)
}

func TestMergeUnionBySize(t *testing.T) {
	u := New(5, IntPayload(1))
	// Build a 3-element set {0,1,2} and a 1-element set {3}.
	u.Merge(0, 1)
	u.Merge(1, 2)
	bigRoot := u.Find(0)

	_, root := u.Merge(3, 0)
	// The larger set's root should absorb the smaller one.
	assert.Equal(t, bigRoot, root)
	if u.Find(3) != root || u.Find(0) != root {
		t.Fatalf("expected both sets to share root %d", root)
	}
	assert.Equal(t, 4, u.Size(root))
}

func TestFindPathCompression(t *testing.T) {
	u := New(4, IntPayload(0))
	u.Merge(0, 1)
	u.Merge(1, 2)
	u.Merge(2, 3)

	root := u.Find(0)
	for i := 0; i < 4; i++ {
		assert.Equal(t, root, u.Find(i))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	u := New(2, IntPayload(1))
	c := u.Clone()

	u.Merge(0, 1)

	if c.Find(0) == c.Find(1) {
		t.Fatal("clone should not observe merges made after cloning")
	}
}
