// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package textenc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/srcfix/testutil"
)

func TestResolve(t *testing.T) {
	cases := map[string]struct {
		in           []byte
		wantEncoding string
		wantText     string
		wantFallback bool
	}{
		"ascii": {
			in:           []byte("void main() {}\n"),
			wantEncoding: "utf-8",
			wantText:     "void main() {}\n",
		},
		"utf-8": {
			in:           []byte("// Привет\n"),
			wantEncoding: "utf-8",
			wantText:     "// Привет\n",
		},
		"utf-8 with bom": {
			in:           []byte("\xEF\xBB\xBFmain() {}\n"),
			wantEncoding: "utf-8-sig",
			wantText:     "main() {}\n",
		},
		"gbk": {
			in:           []byte("// \xD6\xD0\xCE\xC4\n"),
			wantEncoding: "gbk",
			wantText:     "// 中文\n",
		},
		"latin-1": {
			in:           []byte("// caf\xE9\n"),
			wantEncoding: "latin-1",
			wantText:     "// café\n",
		},
		"empty": {
			in:           []byte{},
			wantEncoding: "utf-8",
			wantText:     "",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := Resolve(tc.in, nil)
			testutil.AssertEqual(t, got.Encoding.Name(), tc.wantEncoding)
			testutil.AssertEqual(t, got.Text, tc.wantText)
			testutil.AssertEqual(t, got.Fallback, tc.wantFallback)
		})
	}
}

func TestResolveFallback(t *testing.T) {
	in := []byte("bad \xFF\xFE bytes")
	got := Resolve(in, []Encoding{UTF8, UTF8BOM})
	testutil.AssertEqual(t, got.Encoding, UTF8)
	testutil.AssertEqual(t, got.Fallback, true)
	testutil.AssertEqual(t, got.Text, string(in))

	b, err := got.Encoding.Encode(got.Text)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, in) {
		t.Fatalf("fallback content changed on encode: got %q, want %q", b, in)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"utf-8":     []byte("print(\"hi\");\n"),
		"utf-8-sig": []byte("\xEF\xBB\xBFprint(\"hi\");\n"),
		"gbk":       []byte("// \xD6\xD0\xCE\xC4\nprint(\"hi\");\n"),
		"latin-1":   []byte("// caf\xE9\nprint(\"hi\");\n"),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "main.dart")
			if err := os.WriteFile(path, in, 0o644); err != nil {
				t.Fatal(err)
			}

			dec, err := ReadFile(path, nil)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, dec.Encoding.Name(), name)

			if err := WriteFile(path, dec.Text, dec.Encoding); err != nil {
				t.Fatal(err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, in) {
				t.Fatalf("round trip changed content: got %q, want %q", got, in)
			}

			again, err := ReadFile(path, nil)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, again.Encoding.Name(), name)
		})
	}
}

func TestWriteFileKeepsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.dart")
	if err := WriteFile(path, "// header\n\nmain() {}\n", UTF8BOM); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(got), "\xEF\xBB\xBF// header\n\nmain() {}\n")
}

func TestWriteFileUnencodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.dart")
	const orig = "// caf\xE9\n"
	if err := os.WriteFile(path, []byte(orig), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, "// 中文\n", Latin1); err == nil {
		t.Fatal("want error writing characters outside latin-1, got nil")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(got), orig)
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.dart"), nil); !os.IsNotExist(err) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestWriteFileThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.dart")
	link := filepath.Join(dir, "link.dart")
	if err := os.WriteFile(target, []byte("main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("target.dart", link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if err := WriteFile(link, "// header\n\nmain() {}\n", UTF8); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("%s is no longer a symlink (mode %v)", link, fi.Mode())
	}
	testutil.AssertEqual(t, testutil.ReadFile(t, target), "// header\n\nmain() {}\n")
}
