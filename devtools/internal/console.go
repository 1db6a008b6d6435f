// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package internal

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"go.astrophena.name/srcfix/cli"
	"go.astrophena.name/srcfix/internal/rewrite"
)

const rule = "--------------------------------------------------"

// Console prints the progress report of a tool run.
type Console struct {
	env     *cli.Env
	w       io.Writer
	project *Project

	bold, green, yellow, red *color.Color
}

// NewConsole returns a Console writing to the standard output of env.
// Colors are used when standard output is a terminal and NO_COLOR is unset.
func NewConsole(env *cli.Env) *Console {
	c := &Console{
		env:    env,
		w:      env.Stdout,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
	useColor := cli.IsTerminalWriter(env.Stdout) && (env.Getenv == nil || env.Getenv("NO_COLOR") == "")
	for _, col := range []*color.Color{c.bold, c.green, c.yellow, c.red} {
		if useColor {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Printf prints a formatted line.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

// Banner prints the tool title.
func (c *Console) Banner(title string) {
	c.bold.Fprintf(c.w, "=== %s ===\n", title)
}

// Project prints the working directory and remembers it for relative paths.
func (c *Console) Project(p *Project) {
	c.project = p
	c.Printf("Working directory: %s", p.Root)
}

// Block prints text framed by horizontal rules under a caption.
func (c *Console) Block(caption, text string) {
	c.Printf("")
	c.Printf("%s:", caption)
	c.Printf(rule)
	c.Printf("%s", text)
	c.Printf(rule)
}

// Found prints the number of discovered files. It reports false if there is
// nothing to do.
func (c *Console) Found(n int) bool {
	c.Printf("")
	if n == 0 {
		c.Printf("No %s files found.", c.project.Ext)
		return false
	}
	c.Printf("Found %d %s files.", n, c.project.Ext)
	c.Printf("")
	return true
}

// Confirm asks question unless yes is set. On a negative answer it prints a
// cancellation notice.
func (c *Console) Confirm(question string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	ok, err := c.env.Confirm(question)
	if err != nil {
		return false, err
	}
	if !ok {
		c.Printf("Operation cancelled.")
	}
	return ok, nil
}

// Messages describe outcomes in the per-file report.
type Messages struct {
	// Rewritten describes a changed file. dry is true when nothing was
	// written.
	Rewritten func(o rewrite.Outcome, dry bool) string
	// Unchanged describes a file that needed no change.
	Unchanged string
}

// Outcome returns a function printing one file's outcome, suitable for
// [rewrite.Batch.Observe].
func (c *Console) Outcome(msgs Messages, dry bool) func(rewrite.Outcome) {
	return func(o rewrite.Outcome) {
		c.Printf("Processing %s", c.rel(o.Path))
		switch o.Status {
		case rewrite.Rewritten:
			status := "success"
			if dry {
				status = "dry run"
			}
			c.Printf("  %s: %s", c.green.Sprint(status), msgs.Rewritten(o, dry))
		case rewrite.Unchanged:
			c.Printf("  %s: %s", c.yellow.Sprint("skipped"), msgs.Unchanged)
		default:
			c.Printf("  %s: %v", c.red.Sprint("failed"), o.Err)
		}
	}
}

// Summary prints the final counts. Extra lines, like the number of wrapped
// statements, follow the standard ones.
func (c *Console) Summary(sum rewrite.Summary, extra ...string) {
	c.Printf("")
	c.Banner("Done")
	c.Printf("Succeeded: %d files", sum.Succeeded)
	c.Printf("Skipped:   %d files", sum.Skipped)
	c.Printf("Failed:    %d files", sum.Failed)
	c.Printf("Total:     %d files", sum.Total)
	for _, line := range extra {
		c.Printf("%s", line)
	}
}

func (c *Console) rel(path string) string {
	if c.project == nil {
		return path
	}
	return c.project.Rel(path)
}

// Plural returns "1 statement" or "n statements".
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
