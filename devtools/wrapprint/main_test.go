// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"flag"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"golang.org/x/tools/txtar"

	"go.astrophena.name/srcfix/cli/clitest"
	"go.astrophena.name/srcfix/testutil"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"wrapprint": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "testdata/script"})
}

const project = `
-- lib/main.dart --
void main() {
  print('start');
  run(() => print('inline'));
}
-- lib/clean.dart --
void clean() {}
-- lib/generated/intl.dart --
void messages() {
  print('generated');
}
`

const wrapped = `void main() {
  assert(() {
    print('start');
    return true;
  }());
  run(() => print('inline'));
}
`

func setup(t *testing.T) *app {
	dir := t.TempDir()
	testutil.ExtractTxtar(t, txtar.Parse([]byte(project)), dir)
	t.Chdir(dir)
	return new(app)
}

func wantFile(path, want string) func(*testing.T, *app) {
	return func(t *testing.T, _ *app) {
		testutil.AssertEqual(t, testutil.ReadFile(t, path), want)
	}
}

const untouched = "void main() {\n  print('start');\n  run(() => print('inline'));\n}\n"

func TestRun(t *testing.T) {
	clitest.Run(t, setup, map[string]clitest.Case[*app]{
		"no preview then confirm": {
			Stdin:        strings.NewReader("n\ny\n"),
			WantInStdout: "Processing lib/main.dart\n  success: wrapped 1 print statement\n",
			CheckFunc:    wantFile("lib/main.dart", wrapped),
		},
		"summary": {
			Args:         []string{"-y"},
			WantInStdout: "Succeeded: 1 files\nSkipped:   1 files\nFailed:    0 files\nTotal:     2 files\nWrapped:   1 print statement\n",
		},
		"generated code untouched": {
			Args:      []string{"-y"},
			CheckFunc: wantFile("lib/generated/intl.dart", "void messages() {\n  print('generated');\n}\n"),
		},
		"preview then confirm": {
			Stdin:        strings.NewReader("y\ny\n"),
			WantInStdout: "File: lib/main.dart\n1 print statement to wrap:\n  1. line 2: print('start');\n",
			CheckFunc:    wantFile("lib/main.dart", wrapped),
		},
		"preview then decline": {
			Stdin:        strings.NewReader("y\nn\n"),
			WantInStdout: "Operation cancelled.",
			CheckFunc:    wantFile("lib/main.dart", untouched),
		},
		"preview flag": {
			Args:         []string{"-preview"},
			Stdin:        strings.NewReader("n\n"),
			WantInStdout: "Total: 1 print statement to wrap.",
			CheckFunc:    wantFile("lib/main.dart", untouched),
		},
		"dry run": {
			Args:         []string{"-dry"},
			WantInStdout: "  dry run: would wrap 1 print statement\n",
			CheckFunc:    wantFile("lib/main.dart", untouched),
		},
		"help": {
			Args:         []string{"-h"},
			WantErr:      flag.ErrHelp,
			WantInStderr: "skip both questions, or -dry to only report what would change.\n",
		},
		"no input": {
			WantInStdout: "Operation cancelled.",
			CheckFunc:    wantFile("lib/main.dart", untouched),
		},
	})
}

func TestRunNothingToWrap(t *testing.T) {
	setupClean := func(t *testing.T) *app {
		dir := t.TempDir()
		testutil.ExtractTxtar(t, txtar.Parse([]byte("-- lib/clean.dart --\nvoid clean() {}\n")), dir)
		t.Chdir(dir)
		return new(app)
	}
	clitest.Run(t, setupClean, map[string]clitest.Case[*app]{
		"preview stops early": {
			Args:         []string{"-preview"},
			WantInStdout: "No print statements need wrapping.",
		},
		"no files": {
			Args:         []string{"-ext", "kt"},
			WantInStdout: "No .kt files found.",
		},
	})
}
