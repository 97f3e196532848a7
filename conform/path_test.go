// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"testing"

	"go.astrophena.name/checksources/testutil"
)

func TestPathComment(t *testing.T) {
	cases := map[string]struct {
		in         string
		fix        bool
		wantStatus Status
		wantText   string
	}{
		"matches": {
			in:         "/**\n * src/a.cpp\n */\n\n",
			wantStatus: Pass,
			wantText:   "/**\n * src/a.cpp\n */\n\n",
		},
		"stale path": {
			in:         "/**\n * src/old/a.cpp\n */\n\nint a;\n",
			fix:        true,
			wantStatus: Fixed,
			wantText:   "/**\n * src/a.cpp\n */\n\nint a;\n",
		},
		"fixed without fix mode": {
			in:         "/**\n * a.cpp\n */\n\n",
			wantStatus: Fixed,
			wantText:   "/**\n * src/a.cpp\n */\n\n",
		},
		"second line is last": {
			in:         "/**\n * wrong",
			wantStatus: Fixed,
			wantText:   "/**\n * src/a.cpp",
		},
		"empty second line": {
			in:         "x\n\ny\n",
			wantStatus: Fixed,
			wantText:   "x\n * src/a.cpp\ny\n",
		},
		"single line": {
			in:         "foo;\n",
			wantStatus: Error,
			wantText:   "foo;\n",
		},
		"single line without newline": {
			in:         "foo;",
			wantStatus: Error,
			wantText:   "foo;",
		},
		"empty": {
			in:         "",
			wantStatus: Error,
			wantText:   "",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := NewFile("/p/src/a.cpp", "src/a.cpp", false, tc.in)
			res := PathComment{}.Check(f, tc.fix)
			testutil.AssertEqual(t, res.Status, tc.wantStatus)
			testutil.AssertEqual(t, f.Text, tc.wantText)

			// A second pass finds nothing more to fix.
			if res.Status == Fixed {
				again := PathComment{}.Check(f, tc.fix)
				testutil.AssertEqual(t, again.Status, Pass)
			}
		})
	}
}

func TestLineBounds(t *testing.T) {
	cases := map[string]struct {
		s         string
		n         int
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		"first line":       {s: "ab\ncd\n", n: 0, wantStart: 0, wantEnd: 2, wantOK: true},
		"second line":      {s: "ab\ncd\n", n: 1, wantStart: 3, wantEnd: 5, wantOK: true},
		"unterminated":     {s: "ab\ncd", n: 1, wantStart: 3, wantEnd: 5, wantOK: true},
		"past final break": {s: "ab\n", n: 1},
		"past end":         {s: "ab\ncd\n", n: 2},
		"no text":          {s: "", n: 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			start, end, ok := lineBounds(tc.s, tc.n)
			testutil.AssertEqual(t, ok, tc.wantOK)
			testutil.AssertEqual(t, start, tc.wantStart)
			testutil.AssertEqual(t, end, tc.wantEnd)
		})
	}
}
