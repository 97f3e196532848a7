// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest runs table-driven tests against a [cli.App].
package clitest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/checksources/cli"
)

// Case is one invocation of the app under test.
type Case[T cli.App] struct {
	Args []string

	// WantErr must match the error returned by the app with errors.Is.
	// A nil WantErr means the app must succeed.
	WantErr error
	// WantNothingPrinted requires empty stdout and stderr.
	WantNothingPrinted bool
	WantInStdout       string
	WantInStderr       string
}

// Run runs each case in a subtest against a new app returned by setup.
func Run[T cli.App](t *testing.T, setup func(*testing.T) T, cases map[string]Case[T]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			ctx := cli.WithEnv(context.Background(), &cli.Env{
				Args:   tc.Args,
				Getenv: func(string) string { return "" },
				Stdin:  strings.NewReader(""),
				Stdout: &stdout,
				Stderr: &stderr,
			})

			err := cli.Run(ctx, setup(t))
			switch {
			case tc.WantErr == nil && err != nil:
				t.Fatalf("unexpected error: %v\nstderr:\n%s", err, stderr.String())
			case tc.WantErr != nil && !errors.Is(err, tc.WantErr):
				t.Fatalf("want error %v, got %v", tc.WantErr, err)
			}

			if tc.WantNothingPrinted && stdout.Len()+stderr.Len() > 0 {
				t.Errorf("want no output, got stdout %q, stderr %q", stdout.String(), stderr.String())
			}
			if !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got %q", tc.WantInStdout, stdout.String())
			}
			if !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got %q", tc.WantInStderr, stderr.String())
			}
		})
	}
}
