package diffutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teleivo/diffutils"
)

func TestNextHunkSingleChange(t *testing.T) {
	c := &diffutils.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 1}
	end := diffutils.NextHunk(c, 3)
	assert.Same(t, c, end)
}

func TestNextHunkCoalescesCloseChanges(t *testing.T) {
	// gap of 2 unchanged lines between the two changes, below 2*3+1=7.
	second := &diffutils.Change{Line0: 3, Line1: 3, Deleted: 1, Inserted: 1}
	first := &diffutils.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 1, Next: second}

	end := diffutils.NextHunk(first, 3)
	assert.Same(t, second, end)
}

func TestNextHunkSplitsFarChanges(t *testing.T) {
	// gap of 10 unchanged lines, at or above 2*3+1=7.
	second := &diffutils.Change{Line0: 11, Line1: 11, Deleted: 1, Inserted: 1}
	first := &diffutils.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 1, Next: second}

	end := diffutils.NextHunk(first, 3)
	assert.Same(t, first, end)
}

func TestNextHunkIgnorableNeighborUsesTighterThreshold(t *testing.T) {
	// gap of 4: below 2*3+1=7 but at the tighter ignorable threshold of 3,
	// so an ignorable neighbor at this distance must NOT be absorbed.
	second := &diffutils.Change{Line0: 5, Line1: 5, Deleted: 1, Inserted: 1, Ignore: true}
	first := &diffutils.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 1, Next: second}

	end := diffutils.NextHunk(first, 3)
	assert.Same(t, first, end)
}

func TestNextHunkPanicsOnMismatchedGap(t *testing.T) {
	second := &diffutils.Change{Line0: 3, Line1: 5, Deleted: 1, Inserted: 1}
	first := &diffutils.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 1, Next: second}

	assert.Panics(t, func() {
		diffutils.NextHunk(first, 3)
	})
}
