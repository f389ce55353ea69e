package diffutils

import (
	"bytes"
	"math"
)

// noMatch is the sentinel lastMatch value meaning "no prior successful
// match", chosen per §4.7 to compare greater than any real line index.
const noMatch = math.MaxInt

// FunctionFinder locates, for a given starting line, the nearest
// preceding line in a FileView matching a function-header regex. It
// carries a search cursor across calls within a single emit pass so that
// successive hunks don't rescan lines already covered, and it remembers
// the last successful match so a hunk with no new header in its own gap
// still inherits the enclosing function from an earlier hunk.
//
// A FunctionFinder is scoped to one emit pass: construct a fresh one (via
// NewFunctionFinder) for every top-level WriteContext/WriteUnified call,
// per §5 — there is no package-level mutable state here.
type FunctionFinder struct {
	regex      Matcher
	lastSearch int
	lastMatch  int
}

// NewFunctionFinder returns a FunctionFinder ready to search file starting
// from its first prefix line. regex may be nil, in which case Find always
// returns nil.
func NewFunctionFinder(regex Matcher, prefixLines int) *FunctionFinder {
	return &FunctionFinder{
		regex:      regex,
		lastSearch: -prefixLines,
		lastMatch:  noMatch,
	}
}

// Find implements §4.7's find_function: it scans file backward from
// linenum-1 down to (but not below) the previous call's linenum, looking
// for a line matching the function regex. If it finds one, that line
// becomes the new sticky match. If it finds none but a sticky match
// exists from an earlier call, that line is returned instead. Returns nil
// if neither applies, or if no regex was configured.
func (f *FunctionFinder) Find(file FileView, linenum int) []byte {
	if f.regex == nil {
		return nil
	}
	previous := f.lastSearch
	f.lastSearch = linenum

	for i := linenum - 1; i >= previous; i-- {
		line := trimTerminator(file.Line(i))
		if f.regex.Search(line, 0, len(line)) >= 0 {
			f.lastMatch = i
			return file.Line(i)
		}
	}

	if f.lastMatch != noMatch {
		return file.Line(f.lastMatch)
	}
	return nil
}

// trimTerminator strips a single trailing newline, if present.
func trimTerminator(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		return line[:n-1]
	}
	return line
}

// FormatFunctionLabel renders a function-header line for display per
// §4.7's printing rule: skip leading whitespace (never crossing a
// newline), keep at most 40 bytes up to the first newline, and
// right-trim trailing whitespace. The cap is deliberately byte-based, not
// rune- or column-based, per §9 Open Question (a). The caller is
// responsible for the leading space that precedes the label.
func FormatFunctionLabel(line []byte) []byte {
	i := 0
	for i < len(line) && line[i] != '\n' && isHSpace(line[i]) {
		i++
	}
	rest := line[i:]
	if j := bytes.IndexByte(rest, '\n'); j >= 0 {
		rest = rest[:j]
	}
	const maxLabelBytes = 40
	if len(rest) > maxLabelBytes {
		rest = rest[:maxLabelBytes]
	}
	return bytes.TrimRight(rest, " \t\r\v\f")
}

func isHSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
