// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"errors"
	"fmt"
)

// ErrUnfixed is returned by callers that treat remaining errors as failure.
var ErrUnfixed = errors.New("unfixed errors remain")

// Status is the outcome of a single check.
type Status int

const (
	// Pass means the file conforms.
	Pass Status = iota
	// Fixed means the text was corrected.
	Fixed
	// Error means the file does not conform and was left alone.
	Error
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "Pass"
	case Fixed:
		return "Fixed"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is what a check reports for one file.
type Result struct {
	Check   string
	Status  Status
	Message string
}

func pass(check string) Result { return Result{Check: check, Status: Pass} }

func fixed(check, msg string) Result {
	return Result{Check: check, Status: Fixed, Message: msg}
}

func failed(check, format string, args ...any) Result {
	return Result{Check: check, Status: Error, Message: fmt.Sprintf(format, args...)}
}

// Finding is a non-passing result for a particular file.
type Finding struct {
	Path string
	Result
}

// String formats f as "<path>: <status>: <message>".
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Path, f.Status, f.Message)
}

// Summary collects the outcome of a run.
type Summary struct {
	// Checks lists the names of the checks that ran, in order.
	Checks []string
	// Scanned is the number of files checked.
	Scanned int
	// Written is the number of files replaced on disk.
	Written int
	// Findings holds every non-passing result in traversal order.
	Findings []Finding
}

// Count returns the number of findings of check with the given status.
func (s *Summary) Count(check string, status Status) int {
	var n int
	for _, f := range s.Findings {
		if f.Check == check && f.Status == status {
			n++
		}
	}
	return n
}

// Unfixed returns the number of Error findings.
func (s *Summary) Unfixed() int {
	var n int
	for _, f := range s.Findings {
		if f.Status == Error {
			n++
		}
	}
	return n
}
