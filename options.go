package diffutils

// Options carries every recognized configuration field from §3's
// ConfigOptions. Zero value is a reasonable "no special behavior"
// default except for ContextLines, which callers should set explicitly
// (0 is a legitimate value, meaning "no surrounding context").
type Options struct {
	// ContextLines is the number of unchanged lines of context shown
	// around each hunk. Zero is legal and means no context at all.
	ContextLines int

	// IgnoreBlankLines, when set, makes whitespace-only lines ignorable.
	IgnoreBlankLines bool

	// IgnoreRegex, when non-nil, makes any line it matches ignorable.
	IgnoreRegex Matcher

	// FunctionRegex, when non-nil, enables the function-header label on
	// each hunk via FunctionFinder.
	FunctionRegex Matcher

	// InitialTab, when set, puts a tab where a data line's prefix would
	// otherwise end in a space, and in unified style adds a tab after the
	// -/+ marker of a changed line, per §4.6 step 5.
	InitialTab bool

	// SuppressBlankEmpty, when set, suppresses the leading prefix
	// character on a context line that is itself empty (just "\n").
	SuppressBlankEmpty bool

	// Tabsize is the column width tabs expand to when ExpandTabs is set.
	Tabsize int

	// ExpandTabs, when set, expands tab characters in data lines to
	// spaces at Tabsize column boundaries.
	ExpandTabs bool

	// TimeFormat is passed to the header's time formatter. An empty
	// string selects the fallback numeric representation.
	TimeFormat string

	// Labels optionally overrides the two header names. An empty string
	// for a side means "use the FileView's own Label, or failing that its
	// Name followed by its modification time".
	Labels [2]string
}

// DefaultOptions returns the options classic diff(1) uses absent any
// flags: three lines of context, no ignore rules, space-prefixed lines,
// and a tab size of 8.
func DefaultOptions() Options {
	return Options{
		ContextLines: 3,
		Tabsize:      8,
	}
}
