// Package diffutils implements the core of a textual file-comparison
// system: the edit-script data model and the context/unified hunk
// formatters that turn a list of changes between two files into the byte
// streams patch(1) and human readers expect.
//
// The diffing algorithm itself and file I/O are deliberately out of scope
// here; they live in internal/engine, internal/fileview, and cmd/gdiff,
// which exercise this package as a library. Directory walking and the
// ed/rcs/ifdef/sdiff/normal output formats are not implemented anywhere
// in this repository.
package diffutils
