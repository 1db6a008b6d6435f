// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package rewrite

import (
	"regexp"
	"strings"
)

var (
	// printStmt matches a single-line print call whose arguments contain no
	// closing parenthesis. Calls spanning several lines or with nested
	// calls in their arguments, like print(foo(1));, are not matched.
	printStmt = regexp.MustCompile(`(?m)^[ \t]*print[ \t]*\([^)\n]*\);`)
	// guardOpen and guardClose match the first and last lines of an assert
	// closure. Print statements between them are already guarded.
	guardOpen  = regexp.MustCompile(`^\s*assert\s*\(\s*\(\s*\)\s*\{\s*$`)
	guardClose = regexp.MustCompile(`^\s*\}\s*\(\s*\)\s*\)\s*;\s*$`)
)

// PrintWrapRule wraps bare print statements in a debug-only assert closure:
//
//	assert(() {
//	  print("hi");
//	  return true;
//	}());
//
// Statements already inside such a closure are left alone.
type PrintWrapRule struct{}

var _ Rule = PrintWrapRule{}

// Change describes one print statement that needs wrapping.
type Change struct {
	// Line is the 1-based line number of the statement.
	Line int
	// Original is the statement, trimmed.
	Original string
	// Wrapped is the replacement block, trimmed.
	Wrapped string
}

type wrapSite struct {
	start, end int
	block      string
}

func findWraps(content string) []wrapSite {
	nl := lineEnding(content)
	guarded := guardedLines(content)
	var sites []wrapSite
	for _, loc := range printStmt.FindAllStringIndex(content, -1) {
		start, end := loc[0], loc[1]
		if guarded[start] {
			continue
		}
		sites = append(sites, wrapSite{
			start: start,
			end:   end,
			block: wrap(content[start:end], nl),
		})
	}
	return sites
}

// guardedLines returns the offsets of the lines that lie inside an assert
// closure. Closures are not expected to nest.
func guardedLines(content string) map[int]bool {
	guarded := make(map[int]bool)
	inGuard := false
	for off := 0; off < len(content); {
		end := strings.IndexByte(content[off:], '\n')
		if end < 0 {
			end = len(content) - off
		}
		line := content[off : off+end]
		switch {
		case guardOpen.MatchString(line):
			inGuard = true
		case guardClose.MatchString(line):
			inGuard = false
		case inGuard:
			guarded[off] = true
		}
		off += end + 1
	}
	return guarded
}

func wrap(stmt, nl string) string {
	indent := stmt[:len(stmt)-len(strings.TrimLeft(stmt, " \t"))]
	return strings.Join([]string{
		indent + "assert(() {",
		indent + "  " + strings.TrimSpace(stmt),
		indent + "  return true;",
		indent + "}());",
	}, nl)
}

// Apply implements [Rule].
func (PrintWrapRule) Apply(content string) Result {
	sites := findWraps(content)
	if len(sites) == 0 {
		return Result{Status: Unchanged}
	}

	// Back to front, so earlier offsets stay valid.
	out := content
	for i := len(sites) - 1; i >= 0; i-- {
		s := sites[i]
		out = out[:s.start] + s.block + out[s.end:]
	}
	if out == content {
		return Result{Status: Unchanged}
	}
	return Result{Status: Rewritten, Content: out, Edits: len(sites)}
}

// PendingWraps lists the print statements in content that [PrintWrapRule]
// would wrap, without changing anything.
func PendingWraps(content string) []Change {
	sites := findWraps(content)
	changes := make([]Change, 0, len(sites))
	for _, s := range sites {
		changes = append(changes, Change{
			Line:     strings.Count(content[:s.start], "\n") + 1,
			Original: strings.TrimSpace(content[s.start:s.end]),
			Wrapped:  strings.TrimSpace(s.block),
		})
	}
	return changes
}
