// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package txtar

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseConfigArchive(t *testing.T) {
	const data = `Project settings.
-- config.json --
{"source_dirs": ["src", "test"]}
-- notes.txt --
no trailing newline`
	got := Parse([]byte(data))
	want := &Archive{
		Comment: []byte("Project settings.\n"),
		Files: []File{
			{Name: "config.json", Data: []byte(`{"source_dirs": ["src", "test"]}` + "\n")},
			{Name: "notes.txt", Data: []byte("no trailing newline\n")},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse:\ngot  %q\nwant %q", got, want)
	}
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	a := &Archive{Files: []File{{Name: "src/core/a.cpp", Data: []byte("int a;\n")}}}
	if err := Extract(a, dir); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "src", "core", "a.cpp"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "int a;\n" {
		t.Fatalf("got %q", b)
	}
}

func TestExtractRejectsEscapingNames(t *testing.T) {
	for _, name := range []string{"../a.cpp", "/tmp/a.cpp", "src/../../a.cpp"} {
		a := &Archive{Files: []File{{Name: name, Data: []byte("x\n")}}}
		if err := Extract(a, t.TempDir()); err == nil {
			t.Errorf("Extract(%q) succeeded", name)
		}
	}
}
