// Package config merges CLI flags with an optional TOML config file into
// a diffutils.Options, compiling the two regex patterns through
// internal/matcher. Grounded in antgroup-hugescm's modules/zeta/config
// use of github.com/BurntSushi/toml for a small, flat settings struct.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/teleivo/diffutils"
	"github.com/teleivo/diffutils/internal/matcher"
)

// File is the shape of an optional on-disk config file (default
// ".gdiffrc" in the working directory). Every field is optional; only
// fields present in the file override the Options they are merged into,
// which in cmd/gdiff already hold the flag values.
type File struct {
	ContextLines       *int   `toml:"context_lines"`
	IgnoreBlankLines   *bool  `toml:"ignore_blank_lines"`
	IgnoreRegex        string `toml:"ignore_regex"`
	FunctionRegex      string `toml:"function_regex"`
	InitialTab         *bool  `toml:"initial_tab"`
	SuppressBlankEmpty *bool  `toml:"suppress_blank_empty"`
	Tabsize            *int   `toml:"tabsize"`
	ExpandTabs         *bool  `toml:"expand_tabs"`
	TimeFormat         string `toml:"time_format"`
	OldLabel           string `toml:"old_label"`
	NewLabel           string `toml:"new_label"`
}

// Load reads and decodes path. A path that does not exist is not an
// error: it yields an empty File, so an optional config file that was
// never created simply contributes no overrides.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, err
	}
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &f, nil
}

// Merge applies f's overrides on top of base and compiles any configured
// regex patterns, returning the resolved Options.
func (f *File) Merge(base diffutils.Options) (diffutils.Options, error) {
	opts := base

	if f.ContextLines != nil {
		opts.ContextLines = *f.ContextLines
	}
	if f.IgnoreBlankLines != nil {
		opts.IgnoreBlankLines = *f.IgnoreBlankLines
	}
	if f.InitialTab != nil {
		opts.InitialTab = *f.InitialTab
	}
	if f.SuppressBlankEmpty != nil {
		opts.SuppressBlankEmpty = *f.SuppressBlankEmpty
	}
	if f.Tabsize != nil {
		opts.Tabsize = *f.Tabsize
	}
	if f.ExpandTabs != nil {
		opts.ExpandTabs = *f.ExpandTabs
	}
	if f.TimeFormat != "" {
		opts.TimeFormat = f.TimeFormat
	}
	if f.OldLabel != "" {
		opts.Labels[0] = f.OldLabel
	}
	if f.NewLabel != "" {
		opts.Labels[1] = f.NewLabel
	}

	if f.IgnoreRegex != "" {
		m, err := matcher.Compile(f.IgnoreRegex)
		if err != nil {
			return opts, fmt.Errorf("compiling ignore_regex: %w", err)
		}
		opts.IgnoreRegex = m
	}
	if f.FunctionRegex != "" {
		m, err := matcher.Compile(f.FunctionRegex)
		if err != nil {
			return opts, fmt.Errorf("compiling function_regex: %w", err)
		}
		opts.FunctionRegex = m
	}

	return opts, nil
}
