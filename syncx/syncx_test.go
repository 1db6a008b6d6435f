// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"testing"

	"go.astrophena.name/srcfix/testutil"
)

func TestLazy(t *testing.T) {
	var (
		l     Lazy[string]
		calls int
	)
	f := func() string {
		calls++
		return "header"
	}
	testutil.AssertEqual(t, l.Get(f), "header")
	testutil.AssertEqual(t, l.Get(f), "header")
	testutil.AssertEqual(t, calls, 1)
}
