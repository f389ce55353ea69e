package diffutils

// FileView is read-only random access to one side of a comparison. Lines
// are addressed by internal origin-0 index, which may be negative in the
// range [-PrefixLines, 0) to reach into the common leading prefix that was
// skipped during hashing/diffing. Implementations live in
// internal/fileview; this package only depends on the interface.
type FileView interface {
	// Line returns the raw bytes of line i, including its terminating
	// newline unless i is the file's last line and the file does not end
	// in a newline. i must be in [-PrefixLines(), LineCount()).
	Line(i int) []byte

	// LineCount returns the number of valid (non-prefix) lines.
	LineCount() int

	// PrefixLines returns the number of untracked leading lines common to
	// both sides of the comparison.
	PrefixLines() int

	// ModTime returns the file's modification time as seconds and
	// nanoseconds, mirroring struct stat's resolution.
	ModTime() (sec int64, nsec int32)

	// Name returns the file's path as given by the caller.
	Name() string

	// Label returns a caller-supplied override for the header, or "" if
	// none was configured.
	Label() string

	// MissingNewline reports whether the file's last line lacks a
	// terminating newline.
	MissingNewline() bool

	// Translate converts an internal [a, b] range into origin-1 real line
	// numbers, per §4.5.
	Translate(a, b int) (realA, realB int)
}

// Matcher abstracts a compiled regular expression. Search reports the
// index of the first match of data[offset:offset+length], or a negative
// number if there is no match. Regex compilation is a caller
// responsibility (see internal/matcher); this package never compiles one
// itself.
type Matcher interface {
	Search(data []byte, offset, length int) int
}
