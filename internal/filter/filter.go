// Package filter resolves command-line arguments into the pack files to process.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/idelchi/packcrypt/pkg/pathmatch"
)

// PackPatterns are the file patterns recognized as packs when walking directories.
func PackPatterns() []string {
	return []string{"**/*.zip", "**/*.mcpack", "**/*.mcaddon"}
}

// SuffixedPatterns narrows PackPatterns to packs whose stem ends with suffix,
// as produced by encryption.
func SuffixedPatterns(suffix string) []string {
	patterns := PackPatterns()

	for i, pattern := range patterns {
		dir, file := path.Split(pattern)
		patterns[i] = dir + strings.Replace(file, "*", "*"+suffix, 1)
	}

	return patterns
}

// Filter selects files based on include/ignore patterns. Ignores always win.
type Filter struct {
	includes *pathmatch.Matcher
	ignores  *pathmatch.Matcher
}

// NewFilter compiles include/ignore patterns into a reusable filter.
func NewFilter(includes, ignores []string) (*Filter, error) {
	inc, err := pathmatch.NewMatcher(includes)
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	ign, err := pathmatch.NewMatcher(ignores)
	if err != nil {
		return nil, fmt.Errorf("compiling ignore patterns: %w", err)
	}

	return &Filter{includes: inc, ignores: ign}, nil
}

// Match reports whether the slash-separated path should be processed.
func (f *Filter) Match(path string) bool {
	return f.includes.MatchAny(path) && !f.ignores.MatchAny(path)
}

// Resolve takes positional args (files/directories) and returns the pack files to process.
// Files are added directly (bypassing filtering). Directories are walked and filtered.
// Returns matched files and total candidates scanned.
func Resolve(args, includes, ignores []string) (files []string, scanned int, err error) {
	for _, arg := range args {
		if err := validatePath(arg); err != nil {
			return nil, 0, err
		}
	}

	flt, err := NewFilter(includes, ignores)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			// Explicit file: bypass filtering, add directly.
			scanned++

			add(arg)

			continue
		}

		walked, total, err := walkDir(arg, flt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no packs found in: %v", args)
	}

	return files, scanned, nil
}

// walkDir walks root recursively, returning files that pass the filter.
func walkDir(root string, flt *Filter) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		total++

		if !flt.Match(filepath.ToSlash(filepath.Clean(path))) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}

// validatePath rejects paths that escape the current working directory.
func validatePath(path string) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute paths are not allowed: %q", path)
	}

	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("paths must be within the current working directory: %q", path)
	}

	return nil
}
