// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/checksources/testutil"
)

func writeConfig(t *testing.T, root, configJSON string) {
	t.Helper()
	data := "Configuration for checksources.\n-- config.json --\n" + configJSON
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		root := t.TempDir()
		cfg, err := LoadConfig(root)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg.SourceDirs, []string{"src"})
		testutil.AssertEqual(t, cfg.Fix, true)
		testutil.AssertEqual(t, cfg.Project, "Simulatore Relais Apparato")
		testutil.AssertEqual(t, cfg.Author, "Filippo Gentile")
		testutil.AssertEqual(t, cfg.Enabled(LicenseCheck), true)
		testutil.AssertEqual(t, cfg.Enabled(PathCheck), true)
		testutil.AssertEqual(t, cfg.Enabled(NewlineCheck), true)
		testutil.AssertEqual(t, cfg.Enabled(IncludeGuardCheck), false)
	})

	t.Run("overrides", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, `{
  "source_dirs": ["src", "tools"],
  "exclusions": ["src/3rdparty/json.hpp"],
  "author": "Jane Doe",
  "guard_prefix": "SIMRA",
  "checks": {"include-guard": true, "newline": false}
}`)
		cfg, err := LoadConfig(root)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg.SourceDirs, []string{"src", "tools"})
		testutil.AssertEqual(t, cfg.Exclusions, []string{"src/3rdparty/json.hpp"})
		testutil.AssertEqual(t, cfg.Author, "Jane Doe")
		testutil.AssertEqual(t, cfg.Project, "Simulatore Relais Apparato")
		testutil.AssertEqual(t, cfg.GuardPrefix, "SIMRA")
		testutil.AssertEqual(t, cfg.Enabled(IncludeGuardCheck), true)
		testutil.AssertEqual(t, cfg.Enabled(NewlineCheck), false)
		testutil.AssertEqual(t, cfg.Enabled(LicenseCheck), true)
	})

	t.Run("unknown check", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, `{"checks": {"spelling": true}}`)
		_, err := LoadConfig(root)
		if err == nil || !strings.Contains(err.Error(), `unknown check "spelling"`) {
			t.Fatalf("want unknown check error, got %v", err)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, `{`)
		if _, err := LoadConfig(root); err == nil {
			t.Fatal("want error, got nil")
		}
	})
}

func TestClassify(t *testing.T) {
	cfg := DefaultConfig("")
	cases := map[string]struct {
		name           string
		wantRecognized bool
		wantHeader     bool
	}{
		"h":        {name: "relais.h", wantRecognized: true, wantHeader: true},
		"hpp":      {name: "relais.hpp", wantRecognized: true, wantHeader: true},
		"cpp":      {name: "relais.cpp", wantRecognized: true},
		"ui":       {name: "mainwindow.ui"},
		"qrc":      {name: "resources.qrc"},
		"backup":   {name: "relais.cpp~1700000000"},
		"no ext":   {name: "CMakeLists.txt"},
		"c source": {name: "relais.c"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			recognized, header := cfg.classify(tc.name)
			testutil.AssertEqual(t, recognized, tc.wantRecognized)
			testutil.AssertEqual(t, header, tc.wantHeader)
		})
	}
}

func TestPipelineOrder(t *testing.T) {
	cfg := DefaultConfig("")
	var names []string
	for _, c := range Pipeline(cfg) {
		names = append(names, c.Name())
	}
	testutil.AssertEqual(t, names, []string{LicenseCheck, PathCheck, NewlineCheck})

	cfg.Enable(IncludeGuardCheck)
	names = names[:0]
	for _, c := range Pipeline(cfg) {
		names = append(names, c.Name())
	}
	testutil.AssertEqual(t, names, []string{LicenseCheck, PathCheck, NewlineCheck, IncludeGuardCheck})
}
