// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package rewrite

import (
	"context"
	"fmt"
	"log/slog"

	"go.astrophena.name/srcfix/internal/textenc"
	"go.astrophena.name/srcfix/logger"
)

// Batch applies a Rule to files one at a time.
type Batch struct {
	// Rule is applied to every file.
	Rule Rule
	// Candidates are the encodings tried when reading a file.
	// Nil means textenc.DefaultCandidates.
	Candidates []textenc.Encoding
	// DryRun applies the rule without writing anything back.
	DryRun bool
	// Observe, if set, is called after each file with its outcome.
	Observe func(Outcome)
}

// Run processes paths in order and returns the accumulated summary.
//
// Per-file failures are recorded in the summary and do not stop the batch.
// Cancellation of ctx is checked between files; on cancellation Run returns
// the summary so far together with ctx.Err().
func (b *Batch) Run(ctx context.Context, paths []string) (Summary, error) {
	var sum Summary
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		o := b.Process(ctx, path)
		sum.Add(o)
		if b.Observe != nil {
			b.Observe(o)
		}
	}
	return sum, nil
}

// Process reads, rewrites and writes back a single file.
func (b *Batch) Process(ctx context.Context, path string) Outcome {
	o := Outcome{Task: Task{Path: path}}

	dec, err := textenc.ReadFile(path, b.Candidates)
	if err != nil {
		o.Result = Result{Status: Failed, Err: fmt.Errorf("reading: %w", err)}
		logger.Warn(ctx, "read failed", slog.String("path", path), slog.Any("err", err))
		return o
	}
	o.Encoding, o.Fallback = dec.Encoding, dec.Fallback
	if dec.Fallback {
		logger.Info(ctx, "no candidate encoding matched, using fallback",
			slog.String("path", path), slog.String("encoding", dec.Encoding.Name()))
	}

	o.Result = b.Rule.Apply(dec.Text)
	logger.Debug(ctx, "applied rule",
		slog.String("path", path),
		slog.String("encoding", dec.Encoding.Name()),
		slog.String("status", o.Status.String()),
		slog.Int("edits", o.Edits),
	)
	if o.Status != Rewritten || b.DryRun {
		return o
	}

	if err := textenc.WriteFile(path, o.Content, dec.Encoding); err != nil {
		o.Result = Result{Status: Failed, Err: fmt.Errorf("writing: %w", err)}
		logger.Warn(ctx, "write failed", slog.String("path", path), slog.Any("err", err))
	}
	// The new content is not needed past this point.
	o.Content = ""
	return o
}
