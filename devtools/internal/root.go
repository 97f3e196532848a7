// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package internal contains helpers shared by the devtools commands.
package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// rootMarkers are the entries whose presence marks a project root, in order
// of preference.
var rootMarkers = []string{".checksources.txtar", ".git"}

// FindRoot returns the nearest ancestor of dir (dir included) containing
// one of the root markers. If there is none, it returns dir itself.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for d := dir; ; d = filepath.Dir(d) {
		for _, m := range rootMarkers {
			_, err := os.Stat(filepath.Join(d, m))
			if err == nil {
				return d, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return "", err
			}
		}
		if parent := filepath.Dir(d); parent == d {
			return dir, nil
		}
	}
}
