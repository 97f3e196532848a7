// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

//go:generate go tool templ generate -f report.templ

import (
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/olekukonko/tablewriter"
)

// WriteTable writes the number of fixed and unfixed findings per check to w.
func (s *Summary) WriteTable(w io.Writer) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Check", "Fixed", "Errors"})
	t.SetAutoFormatHeaders(false)
	var fixedTotal, errTotal int
	for _, name := range s.Checks {
		f, e := s.Count(name, Fixed), s.Count(name, Error)
		fixedTotal += f
		errTotal += e
		t.Append([]string{name, strconv.Itoa(f), strconv.Itoa(e)})
	}
	t.SetFooter([]string{"Total", strconv.Itoa(fixedTotal), strconv.Itoa(errTotal)})
	t.Render()
	fmt.Fprintf(w, "%d files checked, %d rewritten.\n", s.Scanned, s.Written)
}

// HTMLReport returns a component that renders s as a standalone HTML page.
func HTMLReport(s *Summary, title string) templ.Component { return report(s, title) }
