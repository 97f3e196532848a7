// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"fmt"
	"regexp"
)

// licenseBlockRe matches a block comment at the very start of the text,
// followed by a blank line. The content of the block is not inspected.
var licenseBlockRe = regexp.MustCompile(`(?s)\A/\*\*\n.+\n \*/\n\n`)

const licenseTemplate = `/**
 * %s
 *
 * This file is part of the %s %s.
 *
 * Copyright (C) %d %s
 *
 * This program is free software; you can redistribute it and/or
 * modify it under the terms of the GNU General Public License
 * as published by the Free Software Foundation; either version 3
 * of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.
 */

`

// HasLicenseBlock reports whether text starts with a license block.
func HasLicenseBlock(text string) bool { return licenseBlockRe.MatchString(text) }

// License requires a license block at the top of every file. In fix mode,
// a missing block is generated and prepended.
type License struct {
	Project string
	Author  string
	Year    int
}

func (*License) Name() string { return LicenseCheck }
func (*License) Applies(*File) bool { return true }

func (l *License) Check(f *File, fix bool) Result {
	if HasLicenseBlock(f.Text) {
		return pass(LicenseCheck)
	}
	if !fix {
		return failed(LicenseCheck, "can't find license block")
	}
	f.Text = l.Block(f.Rel) + f.Text
	return fixed(LicenseCheck, "license block")
}

// Block returns the license block for the file at rel.
func (l *License) Block(rel string) string {
	part := "source code"
	if IsTest(rel) {
		part = "test suite"
	}
	return fmt.Sprintf(licenseTemplate, rel, l.Project, part, l.Year, l.Author)
}
