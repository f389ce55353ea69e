package fileview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPairCommonPrefix(t *testing.T) {
	now := time.Unix(0, 0)
	fa, fb := NewPair("a", []byte("one\ntwo\nthree\n"), now, "b", []byte("one\ntwo\nCHANGED\n"), now)

	assert.Equal(t, 2, fa.PrefixLines())
	assert.Equal(t, 2, fb.PrefixLines())
	assert.Equal(t, 1, fa.LineCount())
	assert.Equal(t, 1, fb.LineCount())
	assert.Equal(t, []byte("three\n"), fa.Line(0))
	assert.Equal(t, []byte("CHANGED\n"), fb.Line(0))
	// the prefix is still reachable at negative indices.
	assert.Equal(t, []byte("one\n"), fa.Line(-2))
	assert.Equal(t, []byte("two\n"), fa.Line(-1))
}

func TestNewPairNoCommonPrefix(t *testing.T) {
	fa, fb := NewPair("a", []byte("X\n"), time.Unix(0, 0), "b", []byte("Y\n"), time.Unix(0, 0))
	assert.Equal(t, 0, fa.PrefixLines())
	assert.Equal(t, 0, fb.PrefixLines())
}

func TestMissingNewlineDetection(t *testing.T) {
	fa, fb := NewPair("a", []byte("no newline"), time.Unix(0, 0), "b", []byte("has one\n"), time.Unix(0, 0))
	assert.True(t, fa.MissingNewline())
	assert.False(t, fb.MissingNewline())
}

func TestEmptyFile(t *testing.T) {
	fa, _ := NewPair("a", nil, time.Unix(0, 0), "b", []byte("x\n"), time.Unix(0, 0))
	assert.Equal(t, 0, fa.LineCount())
	assert.Equal(t, 0, fa.PrefixLines())
	assert.False(t, fa.MissingNewline())
}

func TestTranslate(t *testing.T) {
	fa, _ := NewPair("a", []byte("one\ntwo\nthree\n"), time.Unix(0, 0), "b", []byte("one\ntwo\nCHANGED\n"), time.Unix(0, 0))
	// 2 common prefix lines: internal index 0 (first valid line) is real line 3.
	realA, realB := fa.Translate(0, 0)
	assert.Equal(t, 3, realA)
	assert.Equal(t, 3, realB)
}

func TestSetLabelAndModTime(t *testing.T) {
	mod := time.Unix(1700000000, 123)
	fa, _ := NewPair("a", []byte("x\n"), mod, "b", []byte("y\n"), time.Unix(0, 0))
	fa.SetLabel("custom")
	assert.Equal(t, "custom", fa.Label())
	assert.Equal(t, "a", fa.Name())

	sec, nsec := fa.ModTime()
	assert.Equal(t, int64(1700000000), sec)
	assert.Equal(t, int32(123), nsec)
}
