// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"go.astrophena.name/srcfix/cli"
	"go.astrophena.name/srcfix/devtools/internal"
	"go.astrophena.name/srcfix/internal/discover"
	"go.astrophena.name/srcfix/internal/rewrite"
	"go.astrophena.name/srcfix/internal/textenc"
	"go.astrophena.name/srcfix/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	internal.Common
	preview bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	a.Common.Flags(fs)
	fs.BoolVar(&a.preview, "preview", false, "Show the pending changes before asking for confirmation.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	con := internal.NewConsole(env)

	p, err := a.Open()
	if err != nil {
		return err
	}

	con.Banner("Print statement wrapping tool")
	con.Project(p)
	con.Printf("Print statements will be wrapped in assert(() { print(...); return true; }());")

	files, err := p.Files(discover.PrintExcludes)
	if err != nil {
		return err
	}
	if !con.Found(len(files)) {
		return nil
	}

	preview := a.preview
	if !preview && !a.Yes && !a.Dry {
		if preview, err = env.Confirm("Preview the changes first?"); err != nil {
			return err
		}
	}
	if preview {
		if n := showPreview(ctx, con, p, files); n == 0 {
			con.Printf("No print statements need wrapping.")
			return nil
		}
	}

	if ok, err := con.Confirm("Wrap the print statements?", a.Yes || a.Dry); !ok || err != nil {
		return err
	}

	b := &rewrite.Batch{
		Rule:   rewrite.PrintWrapRule{},
		DryRun: a.Dry,
		Observe: con.Outcome(internal.Messages{
			Rewritten: func(o rewrite.Outcome, dry bool) string {
				if dry {
					return "would wrap " + internal.Plural(o.Edits, "print statement")
				}
				return "wrapped " + internal.Plural(o.Edits, "print statement")
			},
			Unchanged: "no print statements to wrap",
		}, a.Dry),
	}
	sum, err := b.Run(ctx, files)
	con.Summary(sum, fmt.Sprintf("Wrapped:   %s", internal.Plural(sum.Edits, "print statement")))
	return err
}

// showPreview prints the statements each file would have wrapped and
// returns their total.
func showPreview(ctx context.Context, con *internal.Console, p *internal.Project, files []string) int {
	con.Printf("")
	con.Banner("Preview")
	var total int
	for _, path := range files {
		dec, err := textenc.ReadFile(path, nil)
		if err != nil {
			logger.Warn(ctx, "cannot preview file", slog.String("path", path), slog.Any("err", err))
			continue
		}
		changes := rewrite.PendingWraps(dec.Text)
		if len(changes) == 0 {
			continue
		}
		con.Printf("")
		con.Printf("File: %s", p.Rel(path))
		con.Printf("%s to wrap:", internal.Plural(len(changes), "print statement"))
		for i, c := range changes {
			con.Printf("  %d. line %d: %s", i+1, c.Line, c.Original)
			con.Printf("     becomes: %s", c.Wrapped)
		}
		total += len(changes)
	}
	con.Printf("")
	con.Printf("Total: %s to wrap.", internal.Plural(total, "print statement"))
	con.Printf("")
	return total
}
