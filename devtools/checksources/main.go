// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/natefinch/atomic"

	"go.astrophena.name/checksources/cli"
	"go.astrophena.name/checksources/conform"
	"go.astrophena.name/checksources/devtools/internal"
	"go.astrophena.name/checksources/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	root          string
	dry           bool
	includeGuards bool
	backup        bool
	strict        bool
	summary       bool
	report        string
	verbose       bool

	now func() time.Time // overridden in tests
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.root, "root", "", "Project root `directory`. Detected from the current directory if empty.")
	fs.BoolVar(&a.dry, "dry", false, "Report problems without writing any file.")
	fs.BoolVar(&a.includeGuards, "include-guards", false, "Also check include guards of header files.")
	fs.BoolVar(&a.backup, "backup", false, "Keep a copy of each file as <file>~<unix time> before rewriting it.")
	fs.BoolVar(&a.strict, "strict", false, "Exit with non-zero status if errors remain.")
	fs.BoolVar(&a.summary, "summary", false, "Print a summary table to stderr.")
	fs.StringVar(&a.report, "report", "", "Write an HTML report of findings to `file`.")
	fs.BoolVar(&a.verbose, "v", false, "Enable debug logging.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if a.verbose {
		logger.LevelVar(ctx).Set(slog.LevelDebug)
	}

	root := a.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		if root, err = internal.FindRoot(wd); err != nil {
			return err
		}
	}

	cfg, err := conform.LoadConfig(root)
	if err != nil {
		return err
	}
	cfg.Fix = !a.dry
	cfg.Backup = a.backup
	if a.includeGuards {
		cfg.Enable(conform.IncludeGuardCheck)
	}
	if len(env.Args) > 0 {
		cfg.SourceDirs = env.Args
	}
	if a.now != nil {
		cfg.Now = a.now
	}

	logger.Debug(ctx, "checking sources",
		slog.String("root", root),
		slog.Any("dirs", cfg.SourceDirs),
		slog.Bool("fix", cfg.Fix),
	)

	sum, err := conform.NewRunner(cfg, env.Stdout).Run(ctx)
	if err != nil {
		return err
	}

	if a.summary {
		sum.WriteTable(env.Stderr)
	}
	if a.report != "" {
		var buf bytes.Buffer
		if err := conform.HTMLReport(sum, "Source conformance report").Render(ctx, &buf); err != nil {
			return err
		}
		if err := atomic.WriteFile(a.report, &buf); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		if err := os.Chmod(a.report, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		env.Logf("Wrote report to %s.", a.report)
	}

	if n := sum.Unfixed(); a.strict && n > 0 {
		return fmt.Errorf("%w: %d", conform.ErrUnfixed, n)
	}
	return nil
}
