// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"path"
	"slices"
	"strings"
)

// File is a source file going through the checks.
type File struct {
	// Path is the path used when reporting findings.
	Path string
	// Rel is the slash-separated path relative to the project root. It is
	// the form embedded into generated content.
	Rel string
	// Header reports whether the file has a header-like extension.
	Header bool
	// Orig is the text as read from disk.
	Orig string
	// Text is the candidate text, modified by checks.
	Text string
}

// NewFile returns a File with both Orig and Text set to text.
func NewFile(displayPath, rel string, header bool, text string) *File {
	return &File{
		Path:   displayPath,
		Rel:    rel,
		Header: header,
		Orig:   text,
		Text:   text,
	}
}

// Changed reports whether checks modified the text.
func (f *File) Changed() bool { return f.Text != f.Orig }

// IsTest reports whether the slash-separated path rel lies under a
// directory named "test".
func IsTest(rel string) bool {
	return slices.Contains(strings.Split(path.Dir(rel), "/"), "test")
}
