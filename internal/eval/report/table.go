package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Entity Recall Correlation with DA: %s ===\n", r.Meta.Name)

	for _, v := range r.Views {
		fmt.Fprintf(tw, "\n--- %s ---\n\n", v.Name)
		writeView(tw, v)
	}

	return tw.Flush()
}

// WriteView writes a single view.
func WriteView(v View, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeView(tw, v)
	return tw.Flush()
}

func writeView(tw *tabwriter.Writer, v View) {
	header := append([]string{"Metric"}, v.Columns...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, row := range v.Rows {
		line := make([]string, 0, len(row.Cells)+1)
		line = append(line, row.Label)
		for _, c := range row.Cells {
			line = append(line, fmtCell(c, v.Placeholder))
		}
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}

	fmt.Fprintln(tw)
}

func fmtCell(c Cell, placeholder string) string {
	if !c.Present {
		return placeholder
	}
	return fmt.Sprintf("%.3f", c.Value)
}
