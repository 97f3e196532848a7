// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package testutil contains test helpers shared by checksources packages.
package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/checksources/txtar"
)

// AssertEqual stops the test unless got and want are deeply equal.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got:  %#v\nwant: %#v", got, want)
	}
}

// Run calls f in a subtest for every file matching glob. Subtests are named
// after the file without its extension.
func Run(t *testing.T, glob string, f func(t *testing.T, match string)) {
	t.Helper()
	matches, err := filepath.Glob(glob)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatalf("no files match %q", glob)
	}
	for _, match := range matches {
		base := filepath.Base(match)
		t.Run(strings.TrimSuffix(base, filepath.Ext(base)), func(t *testing.T) { f(t, match) })
	}
}

// RunGolden is like [Run], but compares what f returns with the file next to
// the match that has the ".golden" extension. With update set, the golden
// file is rewritten instead.
func RunGolden(t *testing.T, glob string, f func(t *testing.T, match string) []byte, update bool) {
	t.Helper()
	Run(t, glob, func(t *testing.T, match string) {
		got := f(t, match)
		golden := strings.TrimSuffix(match, filepath.Ext(match)) + ".golden"
		if update {
			if err := os.WriteFile(golden, got, 0o644); err != nil {
				t.Fatal(err)
			}
			return
		}
		if want := ReadFile(t, golden); !bytes.Equal(got, []byte(want)) {
			t.Fatalf("%s differs, got:\n%s", golden, got)
		}
	})
}

// UnmarshalJSON decodes b into a new V.
func UnmarshalJSON[V any](t *testing.T, b []byte) V {
	t.Helper()
	var v V
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatal(err)
	}
	return v
}

// ReadFile returns the contents of the named file.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// ExtractTxtar writes the files of ar under dir.
func ExtractTxtar(t *testing.T, ar *txtar.Archive, dir string) {
	t.Helper()
	if err := txtar.Extract(ar, dir); err != nil {
		t.Fatal(err)
	}
}
