package diffutils

// NextHunk returns the last Change to include in the hunk that begins at
// start, per §4.3. It walks forward absorbing further changes as long as
// the gap before them (measured in unchanged lines) is strictly less than
// a threshold: context lines if the next change is ignorable (so an
// ignorable neighbor is coalesced more aggressively), or 2*context+1
// otherwise, matching GNU diff's "two hunks separated by fewer than
// 2*context+1 common lines must be shown as one" rule (grounded in
// znkr-diff's edits.Hunks, the corpus's one implementation of this exact
// coalescing test).
//
// The walk stops at the end of the chain. It panics with an
// *InvariantError if the gap measured in file 0 ever disagrees with the
// gap measured in file 1, which per §4.3 indicates a producer bug rather
// than a condition this package can recover from.
func NextHunk(start *Change, context int) *Change {
	end := start
	for end.Next != nil {
		next := end.Next

		threshold := 2*context + 1
		if next.Ignore {
			threshold = context
		}

		gap0 := next.Line0 - end.lastLine0()
		gap1 := next.Line1 - end.lastLine1()
		if gap0 != gap1 {
			invariantf("gap in file 0 (%d) does not match gap in file 1 (%d) before change at line0=%d", gap0, gap1, next.Line0)
		}

		if gap0 >= threshold {
			break
		}
		end = next
	}
	return end
}
