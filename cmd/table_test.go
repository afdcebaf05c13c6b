package cmd

import (
	"strings"
	"testing"

	"video-id-finder/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	assert.Empty(t, renderTable(nil, nil, nil))

	out := renderTable([]string{"Name", "Count"}, [][]string{{"found", "3"}, {"short"}}, []columnAlignment{alignLeft, alignRight})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "found")
	assert.Contains(t, out, "short")
}

func TestDiagnosticsTables(t *testing.T) {
	out := talliesTable(reconcile.Tallies{Found: 4, Skipped: 2})
	assert.Contains(t, out, "unresolved_segments")
	assert.Contains(t, out, "4")

	out = indeterminateTable([]reconcile.Row{{Filename: "quiz.mp4", SegmentTitle: "Quiz Review", FileID: "f9", VideoID: "v9", Distance: 7}})
	assert.Contains(t, out, "Quiz Review")
	assert.Contains(t, out, "7")

	out = unresolvedTable([]reconcile.Unresolved{{FileID: "f2", Outcome: reconcile.OutcomeSkipped, Reason: reconcile.ReasonNoTitleMatch}})
	assert.True(t, strings.Contains(out, string(reconcile.ReasonNoTitleMatch)))
}
