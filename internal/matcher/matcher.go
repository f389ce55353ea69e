// Package matcher adapts stdlib regexp to the diffutils.Matcher contract.
// Regex compilation is a caller responsibility per the core's design (the
// core only ever calls Search); regexp is the right engine for it since
// no example repo in the reference corpus swaps in an alternate regex
// engine for this kind of line-matching task.
package matcher

import "regexp"

// Regexp wraps a compiled *regexp.Regexp to satisfy diffutils.Matcher.
type Regexp struct {
	re *regexp.Regexp
}

// Compile compiles pattern and wraps it. On a failed compile it returns a
// nil *Regexp together with the error; callers should surface compile
// errors themselves, since regex compilation is explicitly out of the
// core's scope.
func Compile(pattern string) (*Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regexp{re: re}, nil
}

// Search implements diffutils.Matcher: it reports the index of the first
// match within data[offset:offset+length], or -1 if there is no match.
func (r *Regexp) Search(data []byte, offset, length int) int {
	if r == nil || r.re == nil {
		return -1
	}
	window := data[offset : offset+length]
	loc := r.re.FindIndex(window)
	if loc == nil {
		return -1
	}
	return offset + loc[0]
}
