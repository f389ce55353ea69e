package diffutils

import "io"

// linePrefix computes the prefix string for one data line per §4.6 step 5
// (unified style) or §4.4's OLD/NEW loops (context style): marker is one
// of ' ' (context/equal), '-' (delete), '+' (insert), or '!' (mixed,
// classic context format only).
//
// For a context line, SuppressBlankEmpty on a blank line suppresses the
// prefix entirely in either style. Otherwise unified style emits a single
// space (a tab under InitialTab) and context style emits two characters,
// a space followed by a space (or a tab under InitialTab).
//
// For a changed line, unified style emits the marker alone; InitialTab
// only controls whether a trailing tab follows it, and that trailing tab
// is itself suppressed on a blank line when SuppressBlankEmpty is set.
//
// Context style always emits a two-character prefix: the marker followed
// by a space (or a tab under InitialTab), per §4.4's worked examples and
// POSIX/GNU diff -c output; for a changed line that trailing space/tab is
// suppressed on a blank line when SuppressBlankEmpty is set.
func linePrefix(marker byte, style Style, opts *Options, isBlankEmpty bool) string {
	if marker == ' ' {
		if opts.SuppressBlankEmpty && isBlankEmpty {
			return ""
		}
		if style == Context {
			if opts.InitialTab {
				return " \t"
			}
			return "  "
		}
		if opts.InitialTab {
			return "\t"
		}
		return " "
	}
	prefix := string(marker)
	suppress := opts.SuppressBlankEmpty && isBlankEmpty
	switch style {
	case Context:
		if !suppress {
			if opts.InitialTab {
				prefix += "\t"
			} else {
				prefix += " "
			}
		}
	default:
		if opts.InitialTab && !suppress {
			prefix += "\t"
		}
	}
	return prefix
}

// expandTabs replaces tab characters in content with spaces up to the
// next tabsize column boundary, per §4.8.
func expandTabs(content []byte, tabsize int) []byte {
	if tabsize <= 0 {
		return content
	}
	out := make([]byte, 0, len(content))
	col := 0
	for _, b := range content {
		if b == '\t' {
			n := tabsize - col%tabsize
			for range n {
				out = append(out, ' ')
			}
			col += n
			continue
		}
		out = append(out, b)
		col++
	}
	return out
}

// writeFileLine writes one line of file at internal index i to w, with
// the prefix appropriate for marker, honoring ExpandTabs and emitting the
// "\ No newline at end of file" sentinel per §4.8 when the line is the
// file's last and lacks a terminator.
func writeFileLine(w io.Writer, file FileView, i int, marker byte, style Style, opts *Options) error {
	line := file.Line(i)

	var content []byte
	hasNewline := false
	if n := len(line); n > 0 && line[n-1] == '\n' {
		content = line[:n-1]
		hasNewline = true
	} else {
		content = line
	}
	if opts.ExpandTabs {
		content = expandTabs(content, opts.Tabsize)
	}

	prefix := linePrefix(marker, style, opts, len(content) == 0)
	if _, err := io.WriteString(w, prefix); err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	if hasNewline {
		_, err := io.WriteString(w, "\n")
		return err
	}
	_, err := io.WriteString(w, "\n\\ No newline at end of file\n")
	return err
}
