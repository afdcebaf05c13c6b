package cmd

import (
	"strconv"

	"video-id-finder/core/reconcile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func talliesTable(t reconcile.Tallies) string {
	rows := [][]string{
		{"found", strconv.Itoa(t.Found)},
		{"indeterminate", strconv.Itoa(t.Indeterminate)},
		{"skipped", strconv.Itoa(t.Skipped)},
		{"duplicates", strconv.Itoa(t.Duplicates)},
		{"unresolved_segments", strconv.Itoa(t.UnresolvedSegments)},
		{"ambiguous_attributes", strconv.Itoa(t.AmbiguousAttributes)},
		{"ambiguous_titles", strconv.Itoa(t.AmbiguousTitles)},
	}
	return renderTable([]string{"Tally", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}

func indeterminateTable(rows []reconcile.Row) string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Filename, r.BatchName, r.SegmentTitle, r.FileID, r.VideoID, strconv.Itoa(r.Distance)})
	}
	return renderTable(
		[]string{"Filename", "Batch", "Segment", "File ID", "Video ID", "Distance"},
		out,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

func unresolvedTable(items []reconcile.Unresolved) string {
	out := make([][]string, 0, len(items))
	for _, u := range items {
		out = append(out, []string{u.FileID, u.Filename, u.BatchName, string(u.Outcome), string(u.Reason)})
	}
	return renderTable([]string{"File ID", "Filename", "Batch", "Outcome", "Reason"}, out, nil)
}
