package diffutils_test

import (
	"bytes"
	"testing"
	"time"

	godiff "github.com/sourcegraph/go-diff/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleivo/diffutils"
	"github.com/teleivo/diffutils/internal/engine"
	"github.com/teleivo/diffutils/internal/fileview"
)

// TestWriteUnifiedRoundTripsThroughGoDiff feeds WriteUnified's output
// through an independent unified-diff parser to check the format is
// actually well-formed, not just byte-equal to a hand-written literal.
func TestWriteUnifiedRoundTripsThroughGoDiff(t *testing.T) {
	tests := map[string]struct {
		a, b string
	}{
		"SingleHunk": {
			a: "line1\nline2\nline3\nline4\nline5\n",
			b: "line1\nCHANGED\nline3\nline4\nline5\n",
		},
		"MultipleHunks": {
			a: "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl\n",
			b: "A\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nL\n",
		},
		"PureInsertion": {
			a: "first\nlast\n",
			b: "first\nmiddle\nlast\n",
		},
		"PureDeletion": {
			a: "first\nmiddle\nlast\n",
			b: "first\nlast\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			now := time.Unix(1700000000, 0)
			fa, fb := fileview.NewPair("old.txt", []byte(test.a), now, "new.txt", []byte(test.b), now)
			script := engine.Diff(fa.Lines(), fb.Lines())
			require.NotNil(t, script)

			opts := diffutils.Options{ContextLines: 2}
			var buf bytes.Buffer
			require.NoError(t, diffutils.WriteUnified(&buf, script, fa, fb, &opts))

			fd, err := godiff.ParseFileDiff(buf.Bytes())
			require.NoError(t, err, "output:\n%s", buf.String())
			assert.Equal(t, "old.txt", fd.OrigName)
			assert.Equal(t, "new.txt", fd.NewName)
			assert.NotEmpty(t, fd.Hunks)

			for _, h := range fd.Hunks {
				assert.Greater(t, h.OrigLines+h.NewLines, int32(0))
			}
		})
	}
}
