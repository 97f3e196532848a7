// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

// Check names, as used in configuration and results.
const (
	LicenseCheck      = "license"
	PathCheck         = "path"
	NewlineCheck      = "newline"
	IncludeGuardCheck = "include-guard"
)

// defaultChecks tells which checks run when the configuration says nothing.
var defaultChecks = map[string]bool{
	LicenseCheck:      true,
	PathCheck:         true,
	NewlineCheck:      true,
	IncludeGuardCheck: false,
}

// A Check inspects a file and may correct its text.
type Check interface {
	// Name returns the name of the check.
	Name() string
	// Applies reports whether the check is relevant for f.
	Applies(f *File) bool
	// Check inspects f.Text and may replace it. fix tells whether the
	// check is allowed to correct problems that it would otherwise
	// report as errors.
	Check(f *File, fix bool) Result
}

// Pipeline returns the enabled checks for cfg in the order they run.
func Pipeline(cfg *Config) []Check {
	all := []Check{
		&License{
			Project: cfg.Project,
			Author:  cfg.Author,
			Year:    cfg.now().Year(),
		},
		PathComment{},
		TrailingNewline{},
		&IncludeGuard{Prefix: cfg.GuardPrefix},
	}
	var checks []Check
	for _, c := range all {
		if cfg.Enabled(c.Name()) {
			checks = append(checks, c)
		}
	}
	return checks
}

// Apply runs checks on f in order and returns the results that are not
// [Pass].
func Apply(f *File, checks []Check, fix bool) []Result {
	var results []Result
	for _, c := range checks {
		if !c.Applies(f) {
			continue
		}
		if res := c.Check(f, fix); res.Status != Pass {
			results = append(results, res)
		}
	}
	return results
}
