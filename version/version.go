// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"go.astrophena.name/checksources/syncx"
)

// Info holds the version information of a binary.
type Info struct {
	// Name is the command name.
	Name string
	// Version is the module version, or "devel" for builds outside
	// of a module version.
	Version string
	// Commit is the VCS revision, if known.
	Commit string
	// Dirty reports whether the working tree had local modifications.
	Dirty bool
	// Built is the VCS commit time, if known.
	Built time.Time
	// Go is the Go toolchain version.
	Go string
}

// String returns a multi-line, human-readable form of Info.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", shortCommit(i.Commit))
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	if !i.Built.IsZero() {
		fmt.Fprintf(&sb, "built at %s\n", i.Built.Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "with %s on %s/%s\n", i.Go, runtime.GOOS, runtime.GOARCH)
	return sb.String()
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

var info syncx.Lazy[Info]

// Version returns version information of the running binary.
func Version() Info {
	return info.Get(func() Info {
		i := Info{
			Name:    CmdName(),
			Version: "devel",
			Go:      runtime.Version(),
		}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			i.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				i.Commit = s.Value
			case "vcs.modified":
				i.Dirty = s.Value == "true"
			case "vcs.time":
				i.Built, _ = time.Parse(time.RFC3339, s.Value)
			}
		}
		return i
	})
}

// CmdName returns the base name of the running executable, without
// extension.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	name := filepath.Base(exe)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
