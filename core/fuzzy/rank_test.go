package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_OrdersByDistance(t *testing.T) {
	candidates := []Candidate{
		{Key: "v1", Title: "Lecture 1"},
		{Key: "quiz", Title: "Quiz Review"},
		{Key: "v2", Title: "Lecture 2"},
	}

	ranked := Rank("lecture-2.mp4", candidates)
	require.Len(t, ranked, 3)

	assert.Equal(t, "v2", ranked[0].Key)
	assert.Equal(t, 2, ranked[0].Distance)
	assert.Equal(t, "v1", ranked[1].Key)
	assert.Equal(t, 3, ranked[1].Distance)
	assert.Equal(t, "quiz", ranked[2].Key)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	candidates := []Candidate{
		{Key: "a", Title: "Session A"},
		{Key: "b", Title: "Session B"},
	}

	ranked := Rank("session-a.mov", candidates)
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Distance, ranked[1].Distance)
	assert.Equal(t, "a", ranked[0].Key)
	assert.Equal(t, "b", ranked[1].Key)
}

func TestBest(t *testing.T) {
	_, ok := Best("anything", nil)
	assert.False(t, ok)

	best, ok := Best("algebra-lecture-3.mp4", []Candidate{
		{Key: "v1", Title: "Lecture 1"},
		{Key: "v3", Title: "Lecture 3"},
	})
	assert.True(t, ok)
	assert.Equal(t, "v3", best.Key)
	assert.Equal(t, 2, best.Distance)
}
