package diffutils

// Change is one atomic edit: delete Deleted lines from file 0 starting at
// Line0, and insert Inserted lines into file 1 starting at Line1. Both
// Line0 and Line1 are internal origin-0 indices (see FileView). Deleted
// and Inserted are never both zero. Changes are linked into a forward
// chain via Next and are strictly increasing, non-overlapping in Line0.
//
// Ignore is the one mutable field: MarkIgnorable sets it before emission,
// and HunkGrouper reads it to choose a tighter coalescing threshold for
// an ignorable neighbor.
type Change struct {
	Line0    int
	Line1    int
	Deleted  int
	Inserted int
	Ignore   bool
	Next     *Change
}

// lastLine0 returns the internal index just past this change's deleted
// range, i.e. the first unaffected line of file 0 after it.
func (c *Change) lastLine0() int {
	return c.Line0 + c.Deleted
}

// lastLine1 returns the internal index just past this change's inserted
// range, i.e. the first unaffected line of file 1 after it.
func (c *Change) lastLine1() int {
	return c.Line1 + c.Inserted
}

// isBlankLine reports whether line consists solely of whitespace up to
// its terminating newline (or end of data, for a final line missing one).
func isBlankLine(line []byte) bool {
	for _, b := range line {
		switch b {
		case '\n', ' ', '\t', '\r', '\v', '\f':
			continue
		default:
			return false
		}
	}
	return true
}

// lineIgnorable reports whether line is excluded from significance per
// Options: blank (when IgnoreBlankLines is set) or matched by IgnoreRegex.
func lineIgnorable(line []byte, opts *Options) bool {
	if opts.IgnoreBlankLines && isBlankLine(line) {
		return true
	}
	if opts.IgnoreRegex != nil && opts.IgnoreRegex.Search(line, 0, len(line)) >= 0 {
		return true
	}
	return false
}

// changeIgnorable reports whether every deleted line of c in fileA and
// every inserted line in fileB is ignorable per opts. A change with no
// lines on a given side is vacuously ignorable on that side.
func changeIgnorable(c *Change, fileA, fileB FileView, opts *Options) bool {
	for i := c.Line0; i < c.lastLine0(); i++ {
		if !lineIgnorable(fileA.Line(i), opts) {
			return false
		}
	}
	for i := c.Line1; i < c.lastLine1(); i++ {
		if !lineIgnorable(fileB.Line(i), opts) {
			return false
		}
	}
	return true
}

// MarkIgnorable pre-marks every Change in script per §4.2: if neither
// IgnoreBlankLines nor IgnoreRegex is active, every change is significant.
// Otherwise each change is judged independently of its neighbors, so
// running MarkIgnorable twice over the same script and options is
// idempotent.
func MarkIgnorable(script *Change, fileA, fileB FileView, opts *Options) {
	active := opts.IgnoreBlankLines || opts.IgnoreRegex != nil
	for c := script; c != nil; c = c.Next {
		if !active {
			c.Ignore = false
			continue
		}
		c.Ignore = changeIgnorable(c, fileA, fileB, opts)
	}
}
