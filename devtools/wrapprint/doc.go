// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Wrapprint wraps bare print statements in Dart code into debug-only asserts.

Each statement like

	print("loaded $count items");

becomes

	assert(() {
	  print("loaded $count items");
	  return true;
	}());

so it only runs in debug builds. Statements already inside such a block are
left alone, so running the tool twice changes nothing.

Only single-line calls whose arguments contain no parentheses are matched.
Statements spanning several lines or with calls in their arguments, like
print(describe(x));, are not changed.

Files are discovered and decoded the same way as by addlicense: the
directory (-dir) is walked for files with the extension (-ext, .dart by
default), skipping build output, dependencies, editor settings and generated
code, and each file is written back in the encoding it was read with.

Before changing anything the tool offers to preview the pending changes and
then asks for confirmation. Pass -preview to always show the preview, -y to
skip both questions, or -dry to only report what would change.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/srcfix/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
