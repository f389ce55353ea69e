package diffutils

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Style selects which header punctuation WriteHeader emits.
type Style int

const (
	// Unified selects "--- "/"+++ " markers.
	Unified Style = iota
	// Context selects "*** "/"--- " markers.
	Context
)

// WriteHeader emits the pair of file-identification lines that precede
// the body of a context or unified diff, per §4.9. If opts.Labels[i] is
// non-empty it is substituted verbatim for "<name>\t<time>" on that side.
func WriteHeader(w io.Writer, style Style, fileA, fileB FileView, opts *Options) error {
	var oldPrefix, newPrefix string
	switch style {
	case Context:
		oldPrefix, newPrefix = "*** ", "--- "
	default:
		oldPrefix, newPrefix = "--- ", "+++ "
	}
	firstLine := oldPrefix + headerField(fileA, opts.Labels[0], opts.TimeFormat)
	secondLine := newPrefix + headerField(fileB, opts.Labels[1], opts.TimeFormat)
	_, err := fmt.Fprintf(w, "%s\n%s\n", firstLine, secondLine)
	return err
}

func headerField(file FileView, optLabel, layout string) string {
	label := optLabel
	if label == "" {
		label = file.Label()
	}
	if label != "" {
		return label
	}
	sec, nsec := file.ModTime()
	return file.Name() + "\t" + formatModTime(sec, nsec, layout)
}

// referenceTimeTokens lists the recognized components of Go's reference
// time (Mon Jan 2 15:04:05 MST 2006), longest-first among ambiguous
// prefixes so a substring scan doesn't miss a shorter token hiding
// inside a longer one's match position.
var referenceTimeTokens = []string{
	"January", "Monday", "2006", "Jan", "Mon", "MST", "15",
	"-07:00", "-0700", "Z07:00", "06", "01", "02", "03", "04", "05",
	"PM", "pm", ".000000000", ".000000", ".000", "_2", "1", "2", "3", "4", "5",
}

// formatModTime renders a modification time using layout (a Go reference-
// time layout string, per time.Time.Format). Per §4.9, if formatting
// fails — here, an empty layout or one containing none of the reference
// time's recognized tokens, so Format could not have produced anything
// but the literal layout text — it falls back to
// "<seconds>.<nanoseconds>" with nanoseconds zero-padded to 9 digits.
func formatModTime(sec int64, nsec int32, layout string) string {
	if !hasReferenceTimeToken(layout) {
		return fallbackModTime(sec, nsec)
	}
	t := time.Unix(sec, int64(nsec))
	return t.Format(layout)
}

func hasReferenceTimeToken(layout string) bool {
	for _, tok := range referenceTimeTokens {
		if strings.Contains(layout, tok) {
			return true
		}
	}
	return false
}

func fallbackModTime(sec int64, nsec int32) string {
	return fmt.Sprintf("%d.%09d", sec, nsec)
}
