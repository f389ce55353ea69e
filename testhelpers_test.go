package diffutils_test

import (
	"testing"

	"github.com/teleivo/diffutils"
	"github.com/teleivo/diffutils/internal/engine"
	"github.com/teleivo/diffutils/internal/fileview"
	"github.com/teleivo/diffutils/internal/matcher"
)

// mustCompileMatcher compiles pattern into a diffutils.Matcher, failing the
// test immediately on a bad pattern.
func mustCompileMatcher(t *testing.T, pattern string) diffutils.Matcher {
	t.Helper()
	m, err := matcher.Compile(pattern)
	if err != nil {
		t.Fatalf("matcher.Compile(%q): %v", pattern, err)
	}
	return m
}

// diffScript builds the Change chain between two fileview.FileViews the way
// cmd/gdiff does, failing the test if the files turn out identical (every
// case that calls this expects a non-nil script).
func diffScript(t *testing.T, fa, fb *fileview.FileView) *diffutils.Change {
	t.Helper()
	script := engine.Diff(fa.Lines(), fb.Lines())
	if script == nil {
		t.Fatalf("diffScript: files are identical, no script produced")
	}
	return script
}
