// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package discover finds the source files a rewrite applies to.
package discover

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LicenseExcludes are directory names never searched for files that need a
// license header.
var LicenseExcludes = []string{
	".git",
	".dart_tool",
	"build",
	"node_modules",
	"target",
	".idea",
	".vscode",
	"dist",
}

// PrintExcludes are directory names never searched for print statements.
// Generated code is left alone as well.
var PrintExcludes = append(slices.Clip(LicenseExcludes), "generated")

// Options control which files [Walk] yields.
type Options struct {
	// Ext is the file extension to match, like ".dart".
	Ext string
	// ExcludeDirs are directory names; any file below a directory with one of
	// these names is skipped.
	ExcludeDirs []string
	// Exclude are doublestar patterns matched against the slash-separated
	// path relative to the root.
	Exclude []string
}

// Walk returns a sequence of absolute paths of files under root whose
// extension is opts.Ext, in lexical order.
//
// The sequence can be ranged over more than once; each iteration walks the
// tree again. A walk error is yielded with an empty path and ends the
// sequence.
func Walk(root string, opts Options) iter.Seq2[string, error] {
	ext := opts.Ext
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return func(yield func(string, error) bool) {
		abs, err := filepath.Abs(root)
		if err != nil {
			yield("", err)
			return
		}
		stopped := false
		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(abs, path)
			if err != nil {
				return err
			}
			if d.IsDir() {
				if rel != "." && slices.Contains(opts.ExcludeDirs, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ext || isExcluded(filepath.ToSlash(rel), opts.Exclude) {
				return nil
			}
			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

func isExcluded(rel string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var paths []string
	for path, err := range seq {
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
