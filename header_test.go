package diffutils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleivo/diffutils/internal/fileview"
)

func TestWriteHeaderUnifiedUsesNameAndTime(t *testing.T) {
	// formatModTime renders in the local zone, so pin it to the zone the
	// expected string is written in.
	local := time.Local
	time.Local = time.FixedZone("CET", 3600)
	t.Cleanup(func() { time.Local = local })

	mod := time.Date(2026, 2, 4, 8, 12, 16, 2963487, time.FixedZone("CET", 3600))
	fa, fb := fileview.NewPair("a.txt", []byte("x\n"), mod, "b.txt", []byte("y\n"), mod)

	var buf bytes.Buffer
	opts := &Options{TimeFormat: "2006-01-02 15:04:05.000000000 -0700"}
	require.NoError(t, WriteHeader(&buf, Unified, fa, fb, opts))

	want := "--- a.txt\t2026-02-04 08:12:16.002963487 +0100\n+++ b.txt\t2026-02-04 08:12:16.002963487 +0100\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteHeaderContextMarkers(t *testing.T) {
	fa, fb := fileview.NewPair("a.txt", []byte("x\n"), time.Unix(0, 0), "b.txt", []byte("y\n"), time.Unix(0, 0))

	var buf bytes.Buffer
	opts := &Options{Labels: [2]string{"old", "new"}}
	require.NoError(t, WriteHeader(&buf, Context, fa, fb, opts))

	assert.Equal(t, "*** old\n--- new\n", buf.String())
}

func TestHeaderFieldPrefersExplicitLabel(t *testing.T) {
	fa, _ := fileview.NewPair("a.txt", []byte("x\n"), time.Unix(0, 0), "b.txt", []byte("y\n"), time.Unix(0, 0))
	got := headerField(fa, "override", "")
	assert.Equal(t, "override", got)
}

func TestFormatModTimeFallsBackOnEmptyLayout(t *testing.T) {
	got := formatModTime(1000, 5, "")
	assert.Equal(t, "1000.000000005", got)
}

func TestFormatModTimeFallsBackWhenLayoutDoesNotFormat(t *testing.T) {
	got := formatModTime(1000, 5, "not a layout")
	assert.Equal(t, "1000.000000005", got)
}

// TestFormatModTimeLayoutEqualsOutputStillSucceeds guards against
// detecting "format failure" by comparing the formatted string to the
// layout string: a timestamp whose year literally is 2006 formats
// "2006" to "2006", which must not be mistaken for a failed format.
func TestFormatModTimeLayoutEqualsOutputStillSucceeds(t *testing.T) {
	mod := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	got := formatModTime(mod.Unix(), 0, "2006")
	assert.Equal(t, "2006", got)
}
