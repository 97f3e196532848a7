// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"testing"

	"go.astrophena.name/checksources/testutil"
)

func TestTrailingNewline(t *testing.T) {
	cases := map[string]struct {
		in         string
		wantStatus Status
		wantText   string
	}{
		"present":        {in: "int a;\n", wantStatus: Pass, wantText: "int a;\n"},
		"missing":        {in: "int a;", wantStatus: Fixed, wantText: "int a;\n"},
		"empty":          {in: "", wantStatus: Fixed, wantText: "\n"},
		"blank trailing": {in: "int a;\n\n", wantStatus: Pass, wantText: "int a;\n\n"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := NewFile("a.cpp", "src/a.cpp", false, tc.in)
			res := TrailingNewline{}.Check(f, false)
			testutil.AssertEqual(t, res.Status, tc.wantStatus)
			testutil.AssertEqual(t, f.Text, tc.wantText)
			if res.Status == Fixed {
				testutil.AssertEqual(t, res.Message, "newline at end")
				testutil.AssertEqual(t, TrailingNewline{}.Check(f, false).Status, Pass)
			}
		})
	}
}
