package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/twostay-labs/ivtree/internal/addressrange"
)

// renderRanges prints ranges as a go-pretty table, one row per range, in
// the order produced by next.
func renderRanges(next func() (addressrange.AddressRange, bool)) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Name", "Low", "High", "Size"})

	count := 0
	for r, ok := next(); ok; r, ok = next() {
		tbl.AppendRow(table.Row{r.Name, r.Low, r.High, humanize.Bytes(r.Size())})
		count++
	}
	tbl.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d ranges", count)})
	tbl.Render()
}
