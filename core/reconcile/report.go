package reconcile

import (
	"encoding/csv"
	"io"
)

// CSVHeader is the header row of the accepted table.
var CSVHeader = []string{"file_id", "video_id"}

// BuildReport splits the rows of result into accepted (distance <= threshold)
// and indeterminate rows. Every row lands in exactly one of the two.
func BuildReport(result *Result, threshold int) *Report {
	report := &Report{
		RunID:         result.RunID,
		Threshold:     threshold,
		Accepted:      []Row{},
		Indeterminate: []Row{},
		Unresolved:    result.Unresolved,
		Tallies:       result.Tallies,
		Pages:         result.Pages,
		StartedAt:     result.StartedAt,
		FinishedAt:    result.FinishedAt,
	}
	if report.Unresolved == nil {
		report.Unresolved = []Unresolved{}
	}

	for _, row := range result.Rows {
		if row.Distance <= threshold {
			report.Accepted = append(report.Accepted, row)
		} else {
			report.Indeterminate = append(report.Indeterminate, row)
		}
	}
	report.Tallies.Indeterminate = len(report.Indeterminate)

	return report
}

// AcceptedPairs projects the accepted rows to (file_id, video_id) records, header first.
func (r *Report) AcceptedPairs() [][]string {
	records := make([][]string, 0, len(r.Accepted)+1)
	records = append(records, CSVHeader)
	for _, row := range r.Accepted {
		records = append(records, []string{row.FileID, row.VideoID})
	}
	return records
}

// WriteCSV serializes the accepted table to w.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(r.AcceptedPairs()); err != nil {
		return err
	}
	return cw.Error()
}
