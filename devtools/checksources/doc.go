// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Checksources checks C and C++ sources for the project's header conventions
and fixes them in place.

Every .h, .hpp and .cpp file under the source directories must:

  - start with the project's license block comment, followed by a blank line;
  - have " * <path>" as its second line, where <path> is the file's path
    relative to the project root;
  - end with a newline.

Header files can also be required to carry an include guard derived from
their path (see -include-guards).

Usage:

	checksources [flags] [dir ...]

Without arguments, the src directory of the project root is checked and
fixed. The project root is the nearest directory, starting from the current
one, that holds a .checksources.txtar file or a .git directory.

Every finding is printed as a line on standard output:

	<file>: Fixed: <what was fixed>
	<file>: Error: <what is wrong>

A missing license block is only added in fix mode; with -dry it is reported
as an error. The path comment and the final newline are always corrected in
the checked text, but nothing is written with -dry.

The tool is configured through an optional .checksources.txtar file in the
project root. This file is a txtar archive and can contain a config.json
file with the following fields:

  - source_dirs: directories to check, relative to the root.
  - extensions, header_extensions: recognized file extensions.
  - exclusions: suffixes of paths to skip.
  - project, author: names used in generated license blocks.
  - guard_prefix: prefix of include guard names.
  - checks: an object enabling or disabling checks by name ("license",
    "path", "newline", "include-guard").
*/
package main

import (
	_ "embed"

	"go.astrophena.name/checksources/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
