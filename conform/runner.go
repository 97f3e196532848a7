// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/natefinch/atomic"

	"go.astrophena.name/checksources/logger"
	"go.astrophena.name/checksources/syncx"
)

// ErrInvalidEncoding is returned when a source file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("not valid UTF-8")

// Runner checks the files under the configured source directories.
type Runner struct {
	cfg    *Config
	out    io.Writer
	checks []Check
	seen   syncx.Map[string, struct{}]
}

// NewRunner returns a Runner that prints findings to out.
func NewRunner(cfg *Config, out io.Writer) *Runner {
	return &Runner{
		cfg:    cfg,
		out:    out,
		checks: Pipeline(cfg),
	}
}

// Run walks every source directory in turn. The first I/O or encoding
// error stops the run; the summary collected so far is returned along with
// it.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	sum := new(Summary)
	for _, c := range r.checks {
		sum.Checks = append(sum.Checks, c.Name())
	}

	root, err := filepath.Abs(r.cfg.Root)
	if err != nil {
		return sum, err
	}
	for _, dir := range r.cfg.SourceDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		if err := r.walk(ctx, root, dir, sum); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func (r *Runner) walk(ctx context.Context, root, dir string, sum *Summary) error {
	logger.Debug(ctx, "walking source directory", slog.String("dir", dir))
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, ok, err := regularFile(path, d)
		if err != nil {
			return err
		}
		if !ok {
			if d.Type()&fs.ModeSymlink != 0 {
				logger.Debug(ctx, "skipping symlink to a directory or missing file", slog.String("path", path))
			}
			return nil
		}
		recognized, header := r.cfg.classify(d.Name())
		if !recognized {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if r.cfg.isExcluded(rel) {
			logger.Debug(ctx, "skipping excluded file", slog.String("path", rel))
			return nil
		}

		// Symlinks are checked under their own name and written through.
		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			return err
		}
		if _, loaded := r.seen.LoadOrStore(target, struct{}{}); loaded {
			return nil
		}

		return r.checkFile(ctx, source{
			path:   path,
			target: target,
			rel:    rel,
			header: header,
			mode:   info.Mode().Perm(),
		}, sum)
	})
}

// regularFile reports whether the walked entry is a regular file, following
// symbolic links.
func regularFile(path string, d fs.DirEntry) (fs.FileInfo, bool, error) {
	if d.IsDir() {
		return nil, false, nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) && d.Type()&fs.ModeSymlink != 0 {
		return nil, false, nil // dangling
	}
	if err != nil {
		return nil, false, err
	}
	return info, info.Mode().IsRegular(), nil
}

// source is a walked file about to be checked.
type source struct {
	path   string      // as walked, used for display and backups
	target string      // path with symlinks resolved, used for writing
	rel    string      // project-relative, slash-separated
	header bool        // header-like extension
	mode   fs.FileMode // permissions kept on rewrite
}

func (r *Runner) checkFile(ctx context.Context, src source, sum *Summary) error {
	b, err := os.ReadFile(src.target)
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("%s: %w", src.path, ErrInvalidEncoding)
	}

	// Line endings are compared as LF and written back as LF.
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	f := NewFile(src.path, src.rel, src.header, text)
	sum.Scanned++
	logger.Debug(ctx, "checking file", slog.String("path", src.rel))

	for _, res := range Apply(f, r.checks, r.cfg.Fix) {
		fd := Finding{Path: src.path, Result: res}
		sum.Findings = append(sum.Findings, fd)
		if _, err := fmt.Fprintln(r.out, fd); err != nil {
			return err
		}
	}

	if !r.cfg.Fix || !f.Changed() {
		return nil
	}
	if r.cfg.Backup {
		backup := src.path + "~" + strconv.FormatInt(r.cfg.now().Unix(), 10)
		if err := replaceFile(backup, b, src.mode); err != nil {
			return fmt.Errorf("backing up %s: %w", src.path, err)
		}
		logger.Debug(ctx, "saved backup", slog.String("path", backup))
	}
	if err := replaceFile(src.target, []byte(f.Text), src.mode); err != nil {
		return fmt.Errorf("replacing %s: %w", src.path, err)
	}
	sum.Written++
	logger.Debug(ctx, "rewrote file", slog.String("path", src.rel))
	return nil
}

// replaceFile atomically replaces the contents of path with data and sets its
// permissions to mode.
func replaceFile(path string, data []byte, mode fs.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, mode)
}
