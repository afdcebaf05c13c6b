package reconcile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsWithDistances(distances ...int) []Row {
	rows := make([]Row, len(distances))
	for i, d := range distances {
		rows[i] = Row{FileID: string(rune('a' + i)), VideoID: string(rune('A' + i)), Distance: d}
	}
	return rows
}

func TestBuildReport_Partition(t *testing.T) {
	rows := rowsWithDistances(0, 1, 2, 3, 7, 2, 0)

	for threshold := -1; threshold <= 8; threshold++ {
		report := BuildReport(&Result{Rows: rows}, threshold)

		assert.Equal(t, len(rows), len(report.Accepted)+len(report.Indeterminate))
		for _, r := range report.Accepted {
			assert.LessOrEqual(t, r.Distance, threshold)
		}
		for _, r := range report.Indeterminate {
			assert.Greater(t, r.Distance, threshold)
		}

		ids := map[string]int{}
		for _, r := range append(append([]Row{}, report.Accepted...), report.Indeterminate...) {
			ids[r.FileID]++
		}
		assert.Len(t, ids, len(rows))
		for _, n := range ids {
			assert.Equal(t, 1, n)
		}
		assert.Equal(t, len(report.Indeterminate), report.Tallies.Indeterminate)
	}
}

func TestBuildReport_DefaultThreshold(t *testing.T) {
	result := &Result{
		RunID:   "run-1",
		Rows:    rowsWithDistances(0, 2, 3),
		Tallies: Tallies{Found: 3, Skipped: 4, Duplicates: 1},
		Pages:   2,
	}

	report := BuildReport(result, DefaultThreshold)
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, 2, report.Threshold)
	assert.Len(t, report.Accepted, 2)
	require.Len(t, report.Indeterminate, 1)
	assert.Equal(t, 3, report.Indeterminate[0].Distance)
	assert.Equal(t, Tallies{Found: 3, Skipped: 4, Duplicates: 1, Indeterminate: 1}, report.Tallies)
	assert.NotNil(t, report.Unresolved)
}

func TestReport_WriteCSV(t *testing.T) {
	report := BuildReport(&Result{Rows: []Row{
		{FileID: "f1", VideoID: "v3", Distance: 2},
		{FileID: "f2", VideoID: "v9", Distance: 5},
		{FileID: "f3", VideoID: "s9", Distance: 0},
	}}, DefaultThreshold)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf))
	assert.Equal(t, "file_id,video_id\nf1,v3\nf3,s9\n", buf.String())
}

func TestReport_WriteCSV_Empty(t *testing.T) {
	report := BuildReport(&Result{}, DefaultThreshold)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf))
	assert.Equal(t, "file_id,video_id\n", buf.String())
}
