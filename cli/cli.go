// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package cli runs single-command programs: it parses flags into an [App],
// prints the usage text taken from the program's doc comment and gives the
// app an [Env] and a logger through its context.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"go.astrophena.name/checksources/logger"
	"go.astrophena.name/checksources/version"
)

// App is a runnable program.
type App interface {
	Run(context.Context) error
}

// HasFlags is an [App] that registers its own flags.
type HasFlags interface {
	App
	Flags(*flag.FlagSet)
}

// ErrExitVersion is returned by [Run] after it printed the version.
var ErrExitVersion = quiet(errors.New("version printed"))

// silentError marks errors that were already reported to the user.
type silentError struct{ err error }

func (e *silentError) Error() string { return e.err.Error() }
func (e *silentError) Unwrap() error { return e.err }

func quiet(err error) error { return &silentError{err} }

// Main runs app with the process environment and exits with status 1 if it
// fails. Interrupts cancel the context passed to app.
func Main(app App) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Run(ctx, app)
	stop()
	if err == nil {
		return
	}
	var se *silentError
	if !errors.As(err, &se) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

// Env is what a program sees of the outside world. Tests construct it
// directly; [Main] uses the process's.
type Env struct {
	Args   []string
	Getenv func(string) string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Logf writes a line to e.Stderr.
func (e *Env) Logf(format string, args ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(e.Stderr, format, args...)
}

type envKey struct{}

// WithEnv returns a copy of ctx carrying e.
func WithEnv(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey{}, e)
}

// GetEnv returns the Env carried by ctx, or the process environment.
func GetEnv(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey{}).(*Env); ok {
		return e
	}
	return &Env{
		Args:   os.Args[1:],
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// IsTerminal reports whether fd is a terminal. Tests replace it.
var IsTerminal = term.IsTerminal

func colorful(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(int(f.Fd()))
}

// Run parses the flags from the Env in ctx and runs app with the remaining
// arguments. A -version flag is added unless app defines one.
//
// If ctx carries no logger, app gets one that writes to the Env's stderr,
// colored when stderr is a terminal.
func Run(ctx context.Context, app App) error {
	env := GetEnv(ctx)

	fs := flag.NewFlagSet(version.CmdName(), flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	if a, ok := app.(HasFlags); ok {
		a.Flags(fs)
	}
	var showVersion bool
	if fs.Lookup("version") == nil {
		fs.BoolVar(&showVersion, "version", false, "Print version and exit.")
	}
	fs.Usage = func() {
		if text := docText(); text != "" {
			fmt.Fprintln(env.Stderr, text)
		}
		fmt.Fprint(env.Stderr, "Flags:\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(env.Args); err != nil {
		// The flag package has printed the problem already.
		return quiet(err)
	}
	if showVersion {
		fmt.Fprint(env.Stderr, version.Version())
		return ErrExitVersion
	}

	runEnv := *env
	runEnv.Args = fs.Args()
	if logger.IsDefault(logger.Get(ctx)) {
		ctx = logger.Put(ctx, logger.NewText(env.Stderr, colorful(env.Stderr)))
	}
	return app.Run(WithEnv(ctx, &runEnv))
}

var docSrc []byte

// SetDocComment sets the source of the program's package doc comment, which
// is printed by -help. The comment must be a /* */ block:
//
//	//go:embed doc.go
//	var doc []byte
//
//	func init() { cli.SetDocComment(doc) }
func SetDocComment(src []byte) { docSrc = src }

func docText() string {
	_, rest, ok := strings.Cut(string(docSrc), "/*\n")
	if !ok {
		return ""
	}
	text, _, _ := strings.Cut(rest, "*/")
	return text
}
