// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"regexp"
	"strings"
)

var (
	ifndefRe  = regexp.MustCompile(`^#ifndef ([0-9A-Z_]+)$`)
	guardName = strings.NewReplacer("/", "_", ".", "_")
)

// IncludeGuard requires header files to open with an include guard named
// after their path. It is disabled unless turned on in the configuration.
type IncludeGuard struct {
	// Prefix is prepended to the derived guard name.
	Prefix string
}

func (*IncludeGuard) Name() string { return IncludeGuardCheck }
func (*IncludeGuard) Applies(f *File) bool { return f.Header }

// Expected returns the guard name for the file at rel.
// For "src/core/relais.h" and prefix "SIMRA" it is "SIMRA_CORE_RELAIS_H".
func (g *IncludeGuard) Expected(rel string) string {
	name := strings.ToUpper(g.Prefix + "_" + guardName.Replace(rel))
	return strings.ReplaceAll(name, "_SRC_", "_")
}

func (g *IncludeGuard) Check(f *File, fix bool) Result {
	lines := strings.SplitAfter(f.Text, "\n")
	i, name, ok := findGuard(lines)
	if !ok {
		return failed(IncludeGuardCheck, "can't find include guard")
	}
	want := g.Expected(f.Rel)
	if name == want {
		return pass(IncludeGuardCheck)
	}
	if !fix {
		return failed(IncludeGuardCheck, "invalid include guard, got %s, expected %s", name, want)
	}
	lines[i] = "#ifndef " + want + "\n"
	lines[i+1] = "#define " + want + "\n"
	f.Text = strings.Join(lines, "")
	return fixed(IncludeGuardCheck, "include guard")
}

// findGuard looks for an "#ifndef NAME" line directly followed by
// "#define NAME". Only lines without preprocessor directives may precede
// the pair. It returns the index of the #ifndef line.
func findGuard(lines []string) (int, string, bool) {
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(line, "#") {
			continue
		}
		m := ifndefRe.FindStringSubmatch(strings.TrimSuffix(line, "\n"))
		if m == nil || !strings.HasSuffix(line, "\n") || i+1 >= len(lines) {
			return 0, "", false
		}
		if lines[i+1] != "#define "+m[1]+"\n" {
			return 0, "", false
		}
		return i, m[1], true
	}
	return 0, "", false
}
