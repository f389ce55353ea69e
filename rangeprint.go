package diffutils

import "strconv"

// formatContextRange renders the internal range [a, b] using the classic
// context-diff convention (§4.5): a single number if the range holds at
// most one line, otherwise "start,end".
func formatContextRange(file FileView, a, b int) string {
	ta, tb := file.Translate(a, b)
	if tb <= ta {
		return strconv.Itoa(tb)
	}
	return strconv.Itoa(ta) + "," + strconv.Itoa(tb)
}

// formatUnifiedRange renders the internal range [a, b] using the unified-
// diff convention (§4.5): "start,length", with the two degenerate cases
// required for empty ranges so patch(1) can locate an insertion/deletion
// point that has zero lines on one side.
func formatUnifiedRange(file FileView, a, b int) string {
	ta, tb := file.Translate(a, b)
	if tb <= ta {
		if tb < ta {
			return strconv.Itoa(tb) + ",0"
		}
		return strconv.Itoa(tb)
	}
	return strconv.Itoa(ta) + "," + strconv.Itoa(tb-ta+1)
}
