// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package internal contains the plumbing shared by the rewrite tools: flags,
// project configuration, file discovery and console reporting.
package internal

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/srcfix/internal/discover"
)

// ConfigFile is the name of the optional project configuration archive,
// looked up in the root directory.
const ConfigFile = ".srcfix.txtar"

// DefaultExt is the extension of files processed when neither a flag nor the
// configuration sets one.
const DefaultExt = ".dart"

// Config is the project configuration read from [ConfigFile].
//
// The archive may contain:
//
//   - exclusions.json: a JSON array of doublestar patterns, relative to the
//     root, of files to leave alone.
//   - ext: the file extension to process.
//   - license.txt: the license header, used when no license file exists.
type Config struct {
	Exclusions []string
	Ext        string
	License    []byte
}

// LoadConfig reads the configuration archive in root. A missing archive
// yields an empty configuration.
func LoadConfig(root string) (*Config, error) {
	cfg := new(Config)

	ar, err := txtar.ParseFile(filepath.Join(root, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		switch f.Name {
		case "exclusions.json":
			if err := json.Unmarshal(f.Data, &cfg.Exclusions); err != nil {
				return nil, fmt.Errorf("%s: exclusions.json: %w", ConfigFile, err)
			}
		case "ext":
			cfg.Ext = strings.TrimSpace(string(f.Data))
		case "license.txt":
			cfg.License = f.Data
		}
	}
	return cfg, nil
}

// Common holds the flags shared by all tools.
type Common struct {
	Dir string
	Ext string
	Yes bool
	Dry bool
}

// Flags registers the shared flags.
func (c *Common) Flags(fs *flag.FlagSet) {
	fs.StringVar(&c.Dir, "dir", ".", "Process files under `directory`.")
	fs.StringVar(&c.Ext, "ext", "", "Process files with this `extension` (default \""+DefaultExt+"\", or the ext entry of "+ConfigFile+").")
	fs.BoolVar(&c.Yes, "y", false, "Do not ask for confirmation.")
	fs.BoolVar(&c.Dry, "dry", false, "Report what would change without writing any file.")
}

// Project is a resolved root directory with its configuration.
type Project struct {
	Root   string
	Ext    string
	Config *Config
}

// Open resolves the root directory and loads its configuration.
func (c *Common) Open() (*Project, error) {
	root, err := filepath.Abs(c.Dir)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(root)
	if err != nil {
		return nil, err
	}
	ext := c.Ext
	if ext == "" {
		ext = cfg.Ext
	}
	if ext == "" {
		ext = DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Project{Root: root, Ext: ext, Config: cfg}, nil
}

// Files lists the files to process, skipping directories named in excludes.
func (p *Project) Files(excludes []string) ([]string, error) {
	return discover.Collect(discover.Walk(p.Root, discover.Options{
		Ext:         p.Ext,
		ExcludeDirs: excludes,
		Exclude:     p.Config.Exclusions,
	}))
}

// Rel returns path relative to the root, for display.
func (p *Project) Rel(path string) string {
	if rel, err := filepath.Rel(p.Root, path); err == nil {
		return rel
	}
	return path
}
