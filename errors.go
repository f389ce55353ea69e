package diffutils

import "fmt"

// InvariantError reports a violated internal invariant of the edit script,
// such as HunkGrouper finding inconsistent gaps between file 0 and file 1.
// It indicates a bug in the edit-script producer, not a user error, and is
// not meant to be recovered from inside this package: emitters panic with
// it, and only a top-level caller (cmd/gdiff's main) should recover it to
// print a diagnostic and exit.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("diffutils: invariant violated: %s", e.Message)
}

func invariantf(format string, a ...any) {
	panic(&InvariantError{Message: fmt.Sprintf(format, a...)})
}
