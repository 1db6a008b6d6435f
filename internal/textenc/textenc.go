// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package textenc detects the text encoding of a file by trial decoding and
// writes text back in the encoding it was read with.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/natefinch/atomic"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Encoding is a candidate text encoding.
type Encoding struct {
	name string
	enc  encoding.Encoding // nil means plain UTF-8
	// sig requires (and strips) a UTF-8 byte-order mark.
	sig bool
}

// Name returns the conventional name of the encoding, like "utf-8" or "gbk".
func (e Encoding) Name() string { return e.name }

func (e Encoding) String() string { return e.name }

// Candidate encodings.
var (
	UTF8    = Encoding{name: "utf-8"}
	UTF8BOM = Encoding{name: "utf-8-sig", sig: true}
	GBK     = Encoding{name: "gbk", enc: simplifiedchinese.GBK}
	GB18030 = Encoding{name: "gb18030", enc: simplifiedchinese.GB18030}
	Latin1  = Encoding{name: "latin-1", enc: charmap.ISO8859_1}
)

// DefaultCandidates is the ranked list of encodings tried by [Resolve].
// The first entry is the fallback.
var DefaultCandidates = []Encoding{UTF8, UTF8BOM, GBK, GB18030, Latin1}

// Decode decodes b. It reports false if b is not valid in e, that is, if
// decoding and re-encoding would not reproduce b exactly.
func (e Encoding) Decode(b []byte) (string, bool) {
	switch {
	case e.sig:
		if !bytes.HasPrefix(b, bom) {
			return "", false
		}
		s, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
		if err != nil || !utf8.Valid(b[len(bom):]) {
			return "", false
		}
		return string(s), true
	case e.enc == nil:
		// A leading BOM belongs to utf-8-sig.
		if bytes.HasPrefix(b, bom) || !utf8.Valid(b) {
			return "", false
		}
		return string(b), true
	}
	s, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	back, err := e.enc.NewEncoder().Bytes(s)
	if err != nil || !bytes.Equal(back, b) {
		return "", false
	}
	return string(s), true
}

// Encode encodes s. It fails if s contains characters that e cannot
// represent.
func (e Encoding) Encode(s string) ([]byte, error) {
	switch {
	case e.sig:
		return unicode.UTF8BOM.NewEncoder().Bytes([]byte(s))
	case e.enc == nil:
		return []byte(s), nil
	}
	b, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding to %s: %w", e.name, err)
	}
	return b, nil
}

// Decoded is file content decoded by [Resolve].
type Decoded struct {
	Text     string
	Encoding Encoding
	// Fallback is true when no candidate accepted the content. Text then
	// holds the raw bytes and Encoding is the first candidate.
	Fallback bool
}

// Resolve returns b decoded with the first candidate that accepts it.
// If none does, it falls back to the first candidate without erroring.
// Nil candidates means [DefaultCandidates].
func Resolve(b []byte, candidates []Encoding) Decoded {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, enc := range candidates {
		if s, ok := enc.Decode(b); ok {
			return Decoded{Text: s, Encoding: enc}
		}
	}
	return Decoded{Text: string(b), Encoding: candidates[0], Fallback: true}
}

// ReadFile reads the named file and resolves its encoding.
func ReadFile(path string, candidates []Encoding) (Decoded, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Decoded{}, err
	}
	return Resolve(b, candidates), nil
}

// WriteFile encodes text with enc and replaces the named file with the
// result. The replacement goes through a temporary file and a rename, so a
// failed write leaves the existing file untouched. If path is a symbolic
// link, the file it points to is replaced and the link is kept.
func WriteFile(path, text string, enc Encoding) error {
	b, err := enc.Encode(text)
	if err != nil {
		return err
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err == nil {
		path = target
	}
	return atomic.WriteFile(path, bytes.NewReader(b))
}
