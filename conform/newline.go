// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import "strings"

// TrailingNewline makes sure a file ends with a newline.
type TrailingNewline struct{}

func (TrailingNewline) Name() string { return NewlineCheck }
func (TrailingNewline) Applies(*File) bool { return true }

func (TrailingNewline) Check(f *File, _ bool) Result {
	if strings.HasSuffix(f.Text, "\n") {
		return pass(NewlineCheck)
	}
	f.Text += "\n"
	return fixed(NewlineCheck, "newline at end")
}
