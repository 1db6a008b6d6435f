// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package rewrite

import (
	"errors"
	"os"
	"strings"

	"go.astrophena.name/srcfix/internal/textenc"
)

var (
	// ErrEmptyLicense is returned when the license source holds only
	// whitespace.
	ErrEmptyLicense = errors.New("license header is empty")
	// ErrUndecodableLicense is returned when the license source is not
	// valid UTF-8.
	ErrUndecodableLicense = errors.New("license header is not valid UTF-8")
)

// LicenseRule prepends a license header to files that do not have one.
type LicenseRule struct {
	header string
}

// NewLicenseRule returns a LicenseRule for header. The header is trimmed of
// surrounding whitespace and its line endings are normalized to "\n".
func NewLicenseRule(header string) (*LicenseRule, error) {
	header = strings.TrimSpace(strings.ReplaceAll(header, "\r\n", "\n"))
	if header == "" {
		return nil, ErrEmptyLicense
	}
	return &LicenseRule{header: header}, nil
}

// LoadLicense reads a license header from the named file.
func LoadLicense(path string) (*LicenseRule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLicense(b)
}

// ParseLicense returns a LicenseRule for raw license file content. A leading
// byte-order mark is ignored.
func ParseLicense(b []byte) (*LicenseRule, error) {
	dec := textenc.Resolve(b, []textenc.Encoding{textenc.UTF8, textenc.UTF8BOM})
	if dec.Fallback {
		return nil, ErrUndecodableLicense
	}
	return NewLicenseRule(dec.Text)
}

// Header returns the trimmed license header.
func (r *LicenseRule) Header() string { return r.header }

// HasLicense reports whether content already carries header.
//
// Content has the header if, after trimming surrounding whitespace, it
// starts with the trimmed header. For headers longer than two lines it is
// enough for the first header line (usually the copyright notice) to appear
// anywhere in content, so a header with an updated year or wording is still
// recognized.
func HasLicense(content, header string) bool {
	content = strings.TrimSpace(strings.ReplaceAll(content, "\r\n", "\n"))
	header = strings.TrimSpace(strings.ReplaceAll(header, "\r\n", "\n"))
	if strings.HasPrefix(content, header) {
		return true
	}
	lines := strings.Split(header, "\n")
	if len(lines) > 2 {
		if first := strings.TrimSpace(lines[0]); first != "" && strings.Contains(content, first) {
			return true
		}
	}
	return false
}

// Apply implements [Rule].
func (r *LicenseRule) Apply(content string) Result {
	if HasLicense(content, r.header) {
		return Result{Status: Unchanged}
	}

	nl := lineEnding(content)
	header := r.header
	if nl != "\n" {
		header = strings.ReplaceAll(header, "\n", nl)
	}

	sep := nl + nl
	if strings.HasPrefix(content, nl) {
		// Keep the existing leading blank line instead of adding another.
		sep = nl
	}
	return Result{
		Status:  Rewritten,
		Content: header + sep + content,
		Edits:   1,
	}
}

var _ Rule = (*LicenseRule)(nil)
