// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package rewrite applies idempotent text rules to files in bulk.
//
// A [Rule] is a pure function from file content to a [Result]. A [Batch]
// runs a rule over a list of files one at a time: it reads each file with
// its detected encoding, applies the rule and writes the new content back in
// the same encoding. A failure on one file is recorded in the [Summary] and
// never stops the batch.
package rewrite

import (
	"fmt"
	"strings"

	"go.astrophena.name/srcfix/internal/textenc"
)

// Status is the outcome of applying a rule to one file.
type Status int

const (
	// Unchanged means the file already complies with the rule.
	Unchanged Status = iota
	// Rewritten means the rule produced new content.
	Rewritten
	// Failed means the file could not be read or written.
	Failed
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Rewritten:
		return "rewritten"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is what a [Rule] returns for one file's content.
type Result struct {
	Status Status
	// Content is the new file content. Set only when Status is Rewritten.
	Content string
	// Edits counts the individual changes made, for example the number of
	// wrapped statements.
	Edits int
	// Err is the reason for a Failed result.
	Err error
}

// A Rule transforms file content. Applying a rule to its own output must
// yield an Unchanged result.
type Rule interface {
	Apply(content string) Result
}

// RuleFunc is an adapter to allow the use of ordinary functions as a Rule.
type RuleFunc func(content string) Result

// Apply calls f(content).
func (f RuleFunc) Apply(content string) Result { return f(content) }

// Task is a file being processed together with its resolved encoding.
type Task struct {
	Path     string
	Encoding textenc.Encoding
	// Fallback reports that no candidate encoding decoded the file cleanly.
	Fallback bool
}

// Outcome is the processing result for a single file.
type Outcome struct {
	Task
	Result
}

// Summary counts outcomes over a batch.
type Summary struct {
	Succeeded int
	Skipped   int
	Failed    int
	Total     int
	// Edits is the sum of Result.Edits over rewritten files.
	Edits int
}

// Add folds o into the summary.
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch o.Status {
	case Rewritten:
		s.Succeeded++
		s.Edits += o.Edits
	case Unchanged:
		s.Skipped++
	default:
		s.Failed++
	}
}

// lineEnding returns the newline sequence used by s: "\r\n" if its first
// line ends with one, otherwise "\n".
func lineEnding(s string) string {
	i := strings.IndexByte(s, '\n')
	if i > 0 && s[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
