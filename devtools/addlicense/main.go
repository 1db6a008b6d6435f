// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"go.astrophena.name/srcfix/cli"
	"go.astrophena.name/srcfix/devtools/internal"
	"go.astrophena.name/srcfix/internal/discover"
	"go.astrophena.name/srcfix/internal/rewrite"
	"go.astrophena.name/srcfix/logger"
)

// DefaultLicenseFile is the license header file looked up in the root
// directory.
const DefaultLicenseFile = "LICENSE_HEADER_COMMENT.txt"

func main() { cli.Main(new(app)) }

type app struct {
	internal.Common
	license string
}

func (a *app) Flags(fs *flag.FlagSet) {
	a.Common.Flags(fs)
	fs.StringVar(&a.license, "license", "", "Read the license header from `file` (default "+DefaultLicenseFile+" in the directory).")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	con := internal.NewConsole(env)

	p, err := a.Open()
	if err != nil {
		return err
	}

	con.Banner("License header tool")
	con.Project(p)

	rule, source, err := a.loadLicense(ctx, p)
	if err != nil {
		return fmt.Errorf("loading license header: %w", err)
	}
	con.Printf("License file: %s", source)
	con.Block("License header", rule.Header())

	files, err := p.Files(discover.LicenseExcludes)
	if err != nil {
		return err
	}
	if !con.Found(len(files)) {
		return nil
	}

	if ok, err := con.Confirm("Add the license header to these files?", a.Yes || a.Dry); !ok || err != nil {
		return err
	}

	b := &rewrite.Batch{
		Rule:   rule,
		DryRun: a.Dry,
		Observe: con.Outcome(internal.Messages{
			Rewritten: func(_ rewrite.Outcome, dry bool) string {
				if dry {
					return "would add license header"
				}
				return "added license header"
			},
			Unchanged: "license header already present",
		}, a.Dry),
	}
	sum, err := b.Run(ctx, files)
	con.Summary(sum)
	return err
}

// loadLicense reads the license header. An explicit -license file must
// exist; otherwise the default file is tried before the license.txt entry of
// the project configuration.
func (a *app) loadLicense(ctx context.Context, p *internal.Project) (*rewrite.LicenseRule, string, error) {
	if a.license != "" {
		path, err := filepath.Abs(a.license)
		if err != nil {
			return nil, "", err
		}
		rule, err := rewrite.LoadLicense(path)
		return rule, path, err
	}

	path := filepath.Join(p.Root, DefaultLicenseFile)
	rule, err := rewrite.LoadLicense(path)
	if errors.Is(err, fs.ErrNotExist) && p.Config.License != nil {
		logger.Debug(ctx, "license file not found, using project configuration",
			slog.String("path", path))
		source := filepath.Join(p.Root, internal.ConfigFile) + ":license.txt"
		rule, err = rewrite.ParseLicense(p.Config.License)
		return rule, source, err
	}
	return rule, path, err
}
