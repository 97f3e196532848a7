// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package conform checks C and C++ sources for the project's textual
// conventions and optionally fixes them in place.
//
// Each file is expected to start with a license block comment whose second
// line names the file's path relative to the project root, and to end with
// a newline. Header files can additionally be required to carry an include
// guard derived from their path.
//
// A [Runner] walks the configured source directories, applies the enabled
// [Check] values to every recognized file in a fixed order, prints one line
// per [Finding] and, in fix mode, replaces files whose text changed.
package conform
