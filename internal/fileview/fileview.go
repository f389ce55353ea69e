// Package fileview provides the concrete diffutils.FileView used by
// cmd/gdiff: read-only line access over file content already loaded into
// memory, with the common-prefix detection the core's negative internal
// line numbers require (§3, §9).
package fileview

import (
	"strings"
	"time"
)

// FileView implements diffutils.FileView over an in-memory line slice.
// Construct a comparison's pair with NewPair so both sides share the same
// PrefixLines.
type FileView struct {
	name           string
	label          string
	lines          []string // includes the prefix; line delimiters kept
	prefixLines    int
	missingNewline bool
	modSec         int64
	modNsec        int32
}

// NewPair builds the two FileViews for a single comparison, computing the
// common leading-line prefix once so it's shared between them. Line
// splitting keeps the teacher's cmd/gdiff readLines convention of
// strings.SplitAfter plus trimming the trailing empty element a
// newline-terminated file otherwise produces.
func NewPair(nameA string, dataA []byte, modA time.Time, nameB string, dataB []byte, modB time.Time) (fileA, fileB *FileView) {
	linesA := splitLines(dataA)
	linesB := splitLines(dataB)
	prefix := commonPrefixLines(linesA, linesB)

	fileA = &FileView{
		name:           nameA,
		lines:          linesA,
		prefixLines:    prefix,
		missingNewline: missingNewline(dataA),
		modSec:         modA.Unix(),
		modNsec:        int32(modA.Nanosecond()),
	}
	fileB = &FileView{
		name:           nameB,
		lines:          linesB,
		prefixLines:    prefix,
		missingNewline: missingNewline(dataB),
		modSec:         modB.Unix(),
		modNsec:        int32(modB.Nanosecond()),
	}
	return fileA, fileB
}

// SetLabel installs a display-name override that WriteHeader prefers over
// Name()+time when Options.Labels doesn't already supply one.
func (f *FileView) SetLabel(label string) {
	f.label = label
}

func (f *FileView) Line(i int) []byte {
	return []byte(f.lines[i+f.prefixLines])
}

func (f *FileView) LineCount() int {
	return len(f.lines) - f.prefixLines
}

func (f *FileView) PrefixLines() int {
	return f.prefixLines
}

func (f *FileView) ModTime() (sec int64, nsec int32) {
	return f.modSec, f.modNsec
}

func (f *FileView) Name() string {
	return f.name
}

func (f *FileView) Label() string {
	return f.label
}

func (f *FileView) MissingNewline() bool {
	return f.missingNewline
}

func (f *FileView) Translate(a, b int) (realA, realB int) {
	return a + f.prefixLines + 1, b + f.prefixLines + 1
}

// Lines returns the valid (non-prefix) lines, suitable for handing to
// internal/engine.Diff.
func (f *FileView) Lines() []string {
	return f.lines[f.prefixLines:]
}

// splitLines mirrors teleivo/diff's cmd/gdiff readLines: split on "\n",
// keeping the delimiter on each element, and drop the trailing empty
// element a newline-terminated file produces.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func missingNewline(data []byte) bool {
	return len(data) > 0 && data[len(data)-1] != '\n'
}

// commonPrefixLines counts the leading lines identical (byte for byte,
// delimiter included) between a and b.
func commonPrefixLines(a, b []string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
