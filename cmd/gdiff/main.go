package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/teleivo/diffutils"
	"github.com/teleivo/diffutils/internal/config"
	"github.com/teleivo/diffutils/internal/engine"
	"github.com/teleivo/diffutils/internal/fileview"
	"github.com/teleivo/diffutils/internal/matcher"
)

// errFlagParse is a sentinel error indicating flag parsing failed.
// The flag package already printed the error, so main should not print again.
var errFlagParse = errors.New("flag parse error")

const defaultTimeFormat = "2006-01-02 15:04:05.000000000 -0700"

func main() {
	code, err := runRecovered(os.Args, os.Stdout, os.Stderr)
	if err != nil && err != errFlagParse {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(code)
}

// runRecovered wraps run, converting a panicked *diffutils.InvariantError
// (an internal bug, not a user error: malformed input to the formatter)
// into a regular error return instead of a crash.
func runRecovered(args []string, w io.Writer, wErr io.Writer) (code int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*diffutils.InvariantError); ok {
				code, err = 2, ie
				return
			}
			panic(r)
		}
	}()
	return run(args, w, wErr)
}

// labelList collects up to two -L values, the way patch(1)'s --label works:
// first use overrides the old file's header field, second overrides the new
// file's.
type labelList []string

func (l *labelList) String() string {
	if l == nil {
		return ""
	}
	return fmt.Sprint([]string(*l))
}

func (l *labelList) Set(v string) error {
	if len(*l) >= 2 {
		return errors.New("-L may be given at most twice")
	}
	*l = append(*l, v)
	return nil
}

func run(args []string, w io.Writer, wErr io.Writer) (int, error) {
	flags := flag.NewFlagSet("gdiff", flag.ContinueOnError)
	flags.SetOutput(wErr)

	context := flags.Int("U", 3, "output NUM lines of unified context")
	classic := flags.Bool("c", false, "output in context diff format instead of unified")
	ignoreBlank := flags.Bool("B", false, "ignore changes whose lines are all blank")
	ignoreRegex := flags.String("I", "", "ignore changes whose lines all match PATTERN")
	functionRegex := flags.String("F", "", "show the most recent line matching PATTERN above each hunk")
	expandTabs := flags.Bool("t", false, "expand tabs to spaces in output")
	tabsize := flags.Int("tabsize", 8, "column width of a tab stop, used with -t")
	initialTab := flags.Bool("initial-tab", false, "use a tab instead of a space before changed text")
	timeFormat := flags.String("time-format", defaultTimeFormat, "time.Time layout for header timestamps")
	configPath := flags.String("config", ".gdiffrc", "path to an optional TOML config file")
	verbose := flags.Bool("v", false, "log diagnostic detail to stderr")
	gutter := flags.Bool("gutter", false, "show old/new line numbers beside each unified diff line")
	var labels labelList
	flags.Var(&labels, "L", "use LABEL instead of the file name and time stamp (repeatable, old then new)")

	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "gdiff computes the shortest edit script between two files")
		_, _ = fmt.Fprintln(wErr, "")
		_, _ = fmt.Fprintln(wErr, "usage: gdiff [flags] file1 file2")
		_, _ = fmt.Fprintln(wErr, "")
		flags.PrintDefaults()
	}

	err := flags.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return 0, nil
		}
		return 2, errFlagParse
	}

	if flags.NArg() != 2 {
		flags.Usage()
		return 2, nil
	}

	logger := logrus.New()
	logger.SetOutput(wErr)
	logger.SetLevel(logrus.WarnLevel)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfgFile, err := config.Load(*configPath)
	if err != nil {
		return 2, err
	}

	opts := diffutils.DefaultOptions()
	opts.ContextLines = *context
	opts.IgnoreBlankLines = *ignoreBlank
	opts.InitialTab = *initialTab
	opts.Tabsize = *tabsize
	opts.ExpandTabs = *expandTabs
	opts.TimeFormat = *timeFormat
	if len(labels) > 0 {
		opts.Labels[0] = labels[0]
	}
	if len(labels) > 1 {
		opts.Labels[1] = labels[1]
	}
	if *ignoreRegex != "" {
		m, err := matcher.Compile(*ignoreRegex)
		if err != nil {
			return 2, fmt.Errorf("compiling -I pattern: %w", err)
		}
		opts.IgnoreRegex = m
	}
	if *functionRegex != "" {
		m, err := matcher.Compile(*functionRegex)
		if err != nil {
			return 2, fmt.Errorf("compiling -F pattern: %w", err)
		}
		opts.FunctionRegex = m
	}

	opts, err = cfgFile.Merge(opts)
	if err != nil {
		return 2, err
	}

	style := diffutils.Unified
	if *classic {
		style = diffutils.Context
	}

	oldFile := flags.Arg(0)
	newFile := flags.Arg(1)

	hasDiff, err := compareFiles(w, logger, oldFile, newFile, opts, style, *gutter)
	if err != nil {
		return 2, err
	}
	if hasDiff {
		return 1, nil
	}
	return 0, nil
}

// compareFiles reads oldFile and newFile, diffs them, and writes the result
// in the requested style to w. It reports whether any difference was found.
func compareFiles(w io.Writer, logger *logrus.Logger, oldFile, newFile string, opts diffutils.Options, style diffutils.Style, gutter bool) (bool, error) {
	oldStat, err := os.Stat(oldFile)
	if err != nil {
		return false, err
	}
	newStat, err := os.Stat(newFile)
	if err != nil {
		return false, err
	}

	oldData, err := os.ReadFile(oldFile)
	if err != nil {
		return false, err
	}
	newData, err := os.ReadFile(newFile)
	if err != nil {
		return false, err
	}

	fileA, fileB := fileview.NewPair(oldFile, oldData, oldStat.ModTime(), newFile, newData, newStat.ModTime())
	logger.WithFields(logrus.Fields{
		"old":          oldFile,
		"new":          newFile,
		"prefix_lines": fileA.PrefixLines(),
	}).Debug("built file views")

	script := engine.Diff(fileA.Lines(), fileB.Lines())
	if script == nil {
		logger.Debug("files are identical")
		return false, nil
	}

	var buf bytes.Buffer
	if style == diffutils.Context {
		err = diffutils.WriteContext(&buf, script, fileA, fileB, &opts)
	} else {
		err = diffutils.WriteUnified(&buf, script, fileA, fileB, &opts)
	}
	if err != nil {
		return true, err
	}
	if buf.Len() == 0 {
		logger.Debug("all changes were ignorable")
		return false, nil
	}

	out := buf.String()
	if gutter && style == diffutils.Unified {
		out = renderGutter(out, fileA.PrefixLines()+fileA.LineCount(), fileB.PrefixLines()+fileB.LineCount())
	}
	_, err = io.WriteString(w, out)
	return true, err
}

// renderGutter prepends an old/new line-number pair to every hunk body line
// of a unified diff, reading hunk headers to re-synchronize its counters at
// each hunk boundary. Numbers are right-aligned to the width of the larger
// file's line count using go-runewidth, which pads by display width rather
// than byte count so the gutter stays aligned even if a future numbering
// scheme mixes in wide glyphs.
func renderGutter(diffText string, oldTotal, newTotal int) string {
	width := len(strconv.Itoa(max(oldTotal, newTotal, 1)))
	lines := splitKeepingNewline(diffText)

	var out []byte
	oldLine, newLine := 0, 0
	for _, line := range lines {
		switch {
		case len(line) >= 3 && line[0] == '@' && line[1] == '@':
			a, c, ok := parseHunkHeader(line)
			if ok {
				oldLine, newLine = a, c
			}
			out = append(out, line...)
			continue
		case len(line) >= 4 && (line[:4] == "--- " || line[:4] == "+++ "):
			out = append(out, line...)
			continue
		case len(line) == 0:
			out = append(out, line...)
			continue
		}

		marker := line[0]
		var oldCol, newCol string
		switch marker {
		case '+':
			oldCol = ""
			newCol = strconv.Itoa(newLine)
			newLine++
		case '-':
			oldCol = strconv.Itoa(oldLine)
			newCol = ""
			oldLine++
		default:
			oldCol = strconv.Itoa(oldLine)
			newCol = strconv.Itoa(newLine)
			oldLine++
			newLine++
		}
		gutterStr := runewidth.FillLeft(oldCol, width) + " " + runewidth.FillLeft(newCol, width) + " "
		out = append(out, gutterStr...)
		out = append(out, line...)
	}
	return string(out)
}

// splitKeepingNewline splits s into lines, keeping each trailing "\n" so the
// lines can be reassembled byte for byte.
func splitKeepingNewline(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// hunkHeaderRe matches a unified hunk header's starting line numbers,
// ignoring the optional ",length" on each side.
var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// parseHunkHeader extracts the starting old/new line numbers from a "@@
// -a,b +c,d @@" header line.
func parseHunkHeader(line string) (oldStart, newStart int, ok bool) {
	m := hunkHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	oldStart, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	newStart, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return oldStart, newStart, true
}
