package curriculum

import (
	"testing"

	"video-id-finder/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func twoDayCourse() *reconcile.Curriculum {
	return &reconcile.Curriculum{
		Identifier: "C1",
		Title:      "Algebra I",
		Segments: [][]reconcile.Segment{
			{
				{SegmentID: "v1", Title: "Lecture 1"},
				{SegmentID: "v2", Title: "Lecture 2"},
			},
			{
				{SegmentID: "v3", Title: "Lecture 3"},
				{SegmentID: "s9", Title: "Quiz Review"},
			},
		},
	}
}

func TestResolveSegment_ByID(t *testing.T) {
	r := NewSegmentResolver()

	for _, filename := range []string{"algebra-lecture-3.mp4", "totally unrelated", ""} {
		match, reason, ok := r.ResolveSegment(twoDayCourse(), filename, "s9")
		assert.True(t, ok)
		assert.Equal(t, reconcile.ReasonNone, reason)
		assert.Equal(t, "s9", match.SegmentID)
		assert.Equal(t, "Quiz Review", match.Title)
		assert.Equal(t, 0, match.Distance)
	}
}

func TestResolveSegment_UnknownID(t *testing.T) {
	r := NewSegmentResolver()

	_, reason, ok := r.ResolveSegment(twoDayCourse(), "algebra-lecture-3.mp4", "missing")
	assert.False(t, ok)
	assert.Equal(t, reconcile.ReasonUnknownSegment, reason)
}

func TestResolveSegment_Fuzzy(t *testing.T) {
	r := NewSegmentResolver()

	match, _, ok := r.ResolveSegment(twoDayCourse(), "algebra-lecture-3.mp4", "")
	assert.True(t, ok)
	assert.Equal(t, "v3", match.SegmentID)
	assert.Equal(t, "Lecture 3", match.Title)
	assert.Equal(t, 2, match.Distance)
}

func TestResolveSegment_FuzzyNeverZero(t *testing.T) {
	r := NewSegmentResolver()
	c := &reconcile.Curriculum{Segments: [][]reconcile.Segment{
		{{SegmentID: "v1", Title: "Lecture 1"}, {SegmentID: "v3", Title: "Lecture 3"}},
	}}

	// The title is an in-order subsequence of the filename, so the raw distance is 0.
	match, reason, ok := r.ResolveSegment(c, "2015-Lecture 3-final.mp4", "")
	assert.True(t, ok)
	assert.Equal(t, reconcile.ReasonNone, reason)
	assert.Equal(t, "v3", match.SegmentID)
	assert.Equal(t, 1, match.Distance)

	byID, _, ok := r.ResolveSegment(c, "2015-Lecture 3-final.mp4", "v3")
	assert.True(t, ok)
	assert.Equal(t, 0, byID.Distance)
}

func TestResolveSegment_TieGoesToFirst(t *testing.T) {
	r := NewSegmentResolver()
	c := &reconcile.Curriculum{Segments: [][]reconcile.Segment{
		{{SegmentID: "a", Title: "Session A"}},
		{{SegmentID: "b", Title: "Session B"}},
	}}

	match, _, ok := r.ResolveSegment(c, "session-a.mov", "")
	assert.True(t, ok)
	assert.Equal(t, "a", match.SegmentID)
	assert.Equal(t, 3, match.Distance)
}

func TestResolveSegment_NoSegments(t *testing.T) {
	r := NewSegmentResolver()

	_, reason, ok := r.ResolveSegment(&reconcile.Curriculum{Identifier: "C1"}, "lecture.mp4", "")
	assert.False(t, ok)
	assert.Equal(t, reconcile.ReasonNoSegments, reason)
}
