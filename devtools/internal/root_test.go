// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package internal

import (
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/checksources/testutil"
)

func TestFindRoot(t *testing.T) {
	cases := map[string]struct {
		marker string
		start  string
	}{
		"config file": {marker: ".checksources.txtar", start: "src/core"},
		"git dir":     {marker: ".git", start: "src"},
		"at root":     {marker: ".git", start: "."},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			if err := os.MkdirAll(filepath.Join(root, tc.start), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.Mkdir(filepath.Join(root, tc.marker), 0o755); err != nil {
				t.Fatal(err)
			}
			got, err := FindRoot(filepath.Join(root, tc.start))
			testutil.AssertEqual(t, err, nil)
			testutil.AssertEqual(t, got, root)
		})
	}
}
