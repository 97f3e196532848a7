// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"strings"
	"testing"

	"go.astrophena.name/checksources/testutil"
)

func testLicense() *License {
	return &License{Project: "Simulatore Relais Apparato", Author: "Filippo Gentile", Year: 2024}
}

func TestHasLicenseBlock(t *testing.T) {
	cases := map[string]struct {
		in   string
		want bool
	}{
		"canonical":            {in: testLicense().Block("src/main.cpp") + "int x;\n", want: true},
		"minimal":              {in: "/**\n * x\n */\n\n", want: true},
		"one line comment":     {in: "/** wrong header */\nfoo;\n", want: false},
		"no blank line after":  {in: "/**\n * x\n */\nfoo;\n", want: false},
		"not at start":         {in: "\n/**\n * x\n */\n\n", want: false},
		"plain block comment":  {in: "/*\n * x\n */\n\n", want: false},
		"empty":                {in: "", want: false},
		"empty block":          {in: "/**\n */\n\n", want: false},
		"later close is found": {in: "/**\n * a\n */\nint x;\n/**\n * b\n */\n\n", want: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, HasLicenseBlock(tc.in), tc.want)
		})
	}
}

func TestLicenseBlock(t *testing.T) {
	cases := map[string]struct {
		rel      string
		wantPart string
	}{
		"source":             {rel: "src/core/relais.cpp", wantPart: "source code"},
		"test":               {rel: "src/test/relais_test.cpp", wantPart: "test suite"},
		"nested test":        {rel: "src/test/unit/relais_test.cpp", wantPart: "test suite"},
		"test in file name":  {rel: "src/test.cpp", wantPart: "source code"},
		"testing directory":  {rel: "src/testing/a.cpp", wantPart: "source code"},
		"top-level test dir": {rel: "test/a.cpp", wantPart: "test suite"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			block := testLicense().Block(tc.rel)
			lines := strings.Split(block, "\n")
			testutil.AssertEqual(t, lines[0], "/**")
			testutil.AssertEqual(t, lines[1], " * "+tc.rel)
			testutil.AssertEqual(t, lines[3], " * This file is part of the Simulatore Relais Apparato "+tc.wantPart+".")
			testutil.AssertEqual(t, lines[5], " * Copyright (C) 2024 Filippo Gentile")
			if !strings.HasSuffix(block, "\n */\n\n") {
				t.Fatalf("block does not end with a closing line and a blank line: %q", block)
			}
			if !HasLicenseBlock(block) {
				t.Fatal("generated block is not recognized")
			}
		})
	}
}

func TestLicenseCheck(t *testing.T) {
	l := testLicense()
	conformant := l.Block("src/a.cpp") + "int a;\n"

	cases := map[string]struct {
		in         string
		fix        bool
		wantStatus Status
		wantMsg    string
		wantText   string
	}{
		"missing, fix": {
			in:         "/** wrong header */\nfoo;\n",
			fix:        true,
			wantStatus: Fixed,
			wantMsg:    "license block",
			wantText:   l.Block("src/a.cpp") + "/** wrong header */\nfoo;\n",
		},
		"missing, no fix": {
			in:         "foo;\n",
			wantStatus: Error,
			wantMsg:    "can't find license block",
			wantText:   "foo;\n",
		},
		"present": {
			in:         conformant,
			fix:        true,
			wantStatus: Pass,
			wantText:   conformant,
		},
		"present with other year": {
			in:         strings.Replace(conformant, "2024", "2019", 1),
			fix:        true,
			wantStatus: Pass,
			wantText:   strings.Replace(conformant, "2024", "2019", 1),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := NewFile("/p/src/a.cpp", "src/a.cpp", false, tc.in)
			res := l.Check(f, tc.fix)
			testutil.AssertEqual(t, res.Status, tc.wantStatus)
			testutil.AssertEqual(t, res.Message, tc.wantMsg)
			testutil.AssertEqual(t, res.Check, LicenseCheck)
			testutil.AssertEqual(t, f.Text, tc.wantText)
		})
	}
}
