package diffutils

import "io"

// WriteUnified writes script as a unified diff to w, following §4.6.
// script may be nil, meaning the files are identical; nothing is written
// in that case, nor if every hunk turns out to be fully ignorable.
func WriteUnified(w io.Writer, script *Change, fileA, fileB FileView, opts *Options) error {
	if script == nil {
		return nil
	}
	MarkIgnorable(script, fileA, fileB, opts)

	ff := NewFunctionFinder(opts.FunctionRegex, fileA.PrefixLines())
	headerWritten := false

	for c := script; c != nil; {
		end := NextHunk(c, opts.ContextLines)
		limit := end.Next
		kind, first0, last0, first1, last1 := AnalyzeHunk(c, limit)
		if kind == KindUnchanged {
			c = limit
			continue
		}

		if !headerWritten {
			if err := WriteHeader(w, Unified, fileA, fileB, opts); err != nil {
				return err
			}
			headerWritten = true
		}

		first0 = max(first0-opts.ContextLines, -fileA.PrefixLines())
		first1 = max(first1-opts.ContextLines, -fileB.PrefixLines())
		last0 = min(last0+opts.ContextLines, fileA.LineCount()-1)
		last1 = min(last1+opts.ContextLines, fileB.LineCount()-1)

		if err := writeUnifiedHunk(w, c, limit, fileA, fileB, opts, ff, first0, last0, first1, last1); err != nil {
			return err
		}
		c = limit
	}
	return nil
}

func writeUnifiedHunk(w io.Writer, start, limit *Change, fileA, fileB FileView, opts *Options, ff *FunctionFinder, first0, last0, first1, last1 int) error {
	header := "@@ -" + formatUnifiedRange(fileA, first0, last0) + " +" + formatUnifiedRange(fileB, first1, last1) + " @@"
	if fn := ff.Find(fileA, first0); fn != nil {
		header += " " + string(FormatFunctionLabel(fn))
	}
	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return err
	}

	i, j := first0, first1
	next := start
	for i <= last0 || j <= last1 {
		if next == limit || i < next.Line0 {
			if err := writeFileLine(w, fileA, i, ' ', Unified, opts); err != nil {
				return err
			}
			i++
			j++
			continue
		}

		for k := 0; k < next.Deleted; k++ {
			if err := writeFileLine(w, fileA, i, '-', Unified, opts); err != nil {
				return err
			}
			i++
		}
		for k := 0; k < next.Inserted; k++ {
			if err := writeFileLine(w, fileB, j, '+', Unified, opts); err != nil {
				return err
			}
			j++
		}
		next = next.Next
	}
	return nil
}
