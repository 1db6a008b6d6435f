// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Addlicense adds a license header to source files that lack one.

It recursively walks a directory (the current one by default, see -dir) and
finds files with the given extension (.dart by default, see -ext), skipping
version control metadata, build output, editor settings and installed
dependencies. Each file is read in its detected encoding (UTF-8, UTF-8 with a
byte-order mark, GBK, GB18030 or Latin-1), and the header is prepended unless
the file already starts with it. Headers longer than two lines also count as
present when their first line, usually the copyright notice, appears anywhere
in the file. The file is written back in the encoding it was read with.

The header is read from LICENSE_HEADER_COMMENT.txt in the directory, or from
the file given with -license. If the header cannot be read, no file is
touched and the tool exits with a non-zero status.

Before changing anything the tool asks for confirmation; pass -y to skip the
question, or -dry to only report what would change.

The directory may contain a .srcfix.txtar archive with project settings:

  - exclusions.json: a JSON array of patterns (like "lib/generated/**") of files
    to leave alone.
  - ext: the file extension to process.
  - license.txt: the license header, used when no license file exists.

Running the tool again on the same files changes nothing.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/srcfix/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
