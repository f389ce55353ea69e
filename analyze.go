package diffutils

// HunkKind classifies a run of changes by which side(s) it materially
// affects. It is a bitmask so callers can test "kind & KindOld" and
// "kind & KindNew" independently, matching §4.4/§4.6's conditional body
// loops.
type HunkKind int

const (
	// KindUnchanged means every change in the run is ignorable and the
	// hunk must be suppressed entirely.
	KindUnchanged HunkKind = 0
	// KindOld means the run has at least one significant deletion.
	KindOld HunkKind = 1 << 0
	// KindNew means the run has at least one significant insertion.
	KindNew HunkKind = 1 << 1
	// KindChanged means both sides are significantly affected.
	KindChanged = KindOld | KindNew
)

func (k HunkKind) String() string {
	switch k {
	case KindUnchanged:
		return "unchanged"
	case KindOld:
		return "old"
	case KindNew:
		return "new"
	case KindChanged:
		return "changed"
	default:
		return "invalid"
	}
}

// AnalyzeHunk inspects the contiguous run of changes starting at start and
// ending just before limit (limit itself is excluded; pass nil to run to
// the end of the chain). This bounded-range parameter stands in for the
// source algorithm's "detach by nulling next" idiom, per §9.
//
// It requires MarkIgnorable to have already set every change's Ignore
// flag; AnalyzeHunk itself only reads that flag, so two calls over the
// same script always agree.
func AnalyzeHunk(start, limit *Change) (kind HunkKind, first0, last0, first1, last1 int) {
	if start == limit {
		return KindUnchanged, 0, -1, 0, -1
	}
	first0, first1 = start.Line0, start.Line1

	var last *Change
	hasDel, hasIns, allIgnore := false, false, true
	for c := start; c != limit; c = c.Next {
		last = c
		if c.Deleted > 0 {
			hasDel = true
		}
		if c.Inserted > 0 {
			hasIns = true
		}
		if !c.Ignore {
			allIgnore = false
		}
	}

	last0 = last.Line0 + last.Deleted - 1
	last1 = last.Line1 + last.Inserted - 1

	if allIgnore {
		return KindUnchanged, first0, last0, first1, last1
	}
	if hasDel {
		kind |= KindOld
	}
	if hasIns {
		kind |= KindNew
	}
	return kind, first0, last0, first1, last1
}
