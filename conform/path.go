// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import "strings"

// PathComment keeps the second line of a file equal to " * <rel>".
//
// A mismatch is always corrected, whether fix mode is on or not. Writing the
// result back to disk still depends on fix mode.
type PathComment struct{}

func (PathComment) Name() string { return PathCheck }
func (PathComment) Applies(*File) bool { return true }

func (PathComment) Check(f *File, _ bool) Result {
	start, end, ok := lineBounds(f.Text, 1)
	if !ok {
		return failed(PathCheck, "can't find path comment")
	}
	want := PathLine(f.Rel)
	if f.Text[start:end] == want {
		return pass(PathCheck)
	}
	f.Text = f.Text[:start] + want + f.Text[end:]
	return fixed(PathCheck, "path")
}

// PathLine returns the expected second line for the file at rel.
func PathLine(rel string) string { return " * " + rel }

// lineBounds returns the byte offsets of the content of line n (zero-based)
// in s, excluding its terminator. A final line terminator does not start a
// new line.
func lineBounds(s string, n int) (start, end int, ok bool) {
	for range n {
		i := strings.IndexByte(s[start:], '\n')
		if i < 0 {
			return 0, 0, false
		}
		start += i + 1
	}
	if start >= len(s) {
		return 0, 0, false
	}
	end = strings.IndexByte(s[start:], '\n')
	if end < 0 {
		return start, len(s), true
	}
	return start, start + end, true
}
