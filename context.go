package diffutils

import "io"

// WriteContext writes script as a classic context diff to w, following
// §4.4. script may be nil, meaning the files are identical; nothing is
// written in that case, nor if every hunk turns out to be fully
// ignorable — in both cases not even the header is emitted, matching
// diff(1)'s "identical files produce no output at all" behavior.
func WriteContext(w io.Writer, script *Change, fileA, fileB FileView, opts *Options) error {
	if script == nil {
		return nil
	}
	MarkIgnorable(script, fileA, fileB, opts)

	ff := NewFunctionFinder(opts.FunctionRegex, fileA.PrefixLines())
	headerWritten := false

	for c := script; c != nil; {
		end := NextHunk(c, opts.ContextLines)
		kind, first0, last0, first1, last1 := AnalyzeHunk(c, end.Next)
		if kind == KindUnchanged {
			c = end.Next
			continue
		}

		if !headerWritten {
			if err := WriteHeader(w, Context, fileA, fileB, opts); err != nil {
				return err
			}
			headerWritten = true
		}

		first0 = max(first0-opts.ContextLines, -fileA.PrefixLines())
		first1 = max(first1-opts.ContextLines, -fileB.PrefixLines())
		last0 = min(last0+opts.ContextLines, fileA.LineCount()-1)
		last1 = min(last1+opts.ContextLines, fileB.LineCount()-1)

		if err := writeContextHunk(w, c, end, fileA, fileB, opts, ff, kind, first0, last0, first1, last1); err != nil {
			return err
		}
		c = end.Next
	}
	return nil
}

func writeContextHunk(w io.Writer, start, end *Change, fileA, fileB FileView, opts *Options, ff *FunctionFinder, kind HunkKind, first0, last0, first1, last1 int) error {
	stanza := "***************"
	if fn := ff.Find(fileA, first0); fn != nil {
		stanza += " " + string(FormatFunctionLabel(fn))
	}
	if _, err := io.WriteString(w, stanza+"\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "*** "+formatContextRange(fileA, first0, last0)+" ****\n"); err != nil {
		return err
	}

	if kind&KindOld != 0 {
		cur := start
		for i := first0; i <= last0; i++ {
			for cur != end.Next && i >= cur.lastLine0() {
				cur = cur.Next
			}
			marker := byte(' ')
			if cur != end.Next && i >= cur.Line0 && i < cur.lastLine0() {
				if cur.Deleted > 0 && cur.Inserted > 0 {
					marker = '!'
				} else {
					marker = '-'
				}
			}
			if err := writeFileLine(w, fileA, i, marker, Context, opts); err != nil {
				return err
			}
		}
	}

	if _, err := io.WriteString(w, "--- "+formatContextRange(fileB, first1, last1)+" ----\n"); err != nil {
		return err
	}

	if kind&KindNew != 0 {
		cur := start
		for i := first1; i <= last1; i++ {
			for cur != end.Next && i >= cur.lastLine1() {
				cur = cur.Next
			}
			marker := byte(' ')
			if cur != end.Next && i >= cur.Line1 && i < cur.lastLine1() {
				if cur.Deleted > 0 && cur.Inserted > 0 {
					marker = '!'
				} else {
					marker = '+'
				}
			}
			if err := writeFileLine(w, fileB, i, marker, Context, opts); err != nil {
				return err
			}
		}
	}
	return nil
}
