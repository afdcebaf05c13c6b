package curriculum_test

import (
	"bytes"
	"context"
	"testing"

	"video-id-finder/core/database"
	"video-id-finder/core/reconcile"
	"video-id-finder/core/reconcile/mocks"
	"video-id-finder/feature/curriculum"
	"video-id-finder/feature/curriculum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seededStore(t *testing.T) *curriculum.Store {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, curriculum.Migrate(db))
	require.NoError(t, curriculum.VerifySchema(db))

	courses := []models.Course{
		{Identifier: "C1", Title: "Algebra I", Segments: []models.CourseSegment{
			{GroupIndex: 1, Position: 0, SegmentID: "v4", Title: "Lecture 4"},
			{GroupIndex: 0, Position: 0, SegmentID: "v3", Title: "Lecture 3"},
		}},
		{Identifier: "C2", Title: "Geometry", Segments: []models.CourseSegment{
			{GroupIndex: 0, Position: 0, SegmentID: "s9", Title: "Proofs"},
		}},
		{Identifier: "C3", Title: "Pre-Algebra"},
	}
	require.NoError(t, db.Create(&courses).Error)

	return curriculum.NewStore(db)
}

func TestPipeline_EndToEnd(t *testing.T) {
	store := seededStore(t)

	vendor := new(mocks.Vendor)
	vendor.On("ListBatches", mock.Anything).Return([]reconcile.Batch{
		{ID: "7", Name: "Algebra I"},
		{ID: "8", Name: "Geometry"},
		{ID: "9", Name: "Algebra"},
	}, nil)
	vendor.On("ListFilesPage", mock.Anything, 1).Return([]reconcile.FileRecord{
		{ID: "f1", Name: "algebra-lecture-3.mp4", BatchID: "7"},
		{ID: "f2", Name: "geo.mp4", BatchID: "8"},
		{ID: "f3", Name: "x.mp4", BatchID: "9"},
	}, nil)
	vendor.On("ListFilesPage", mock.Anything, 2).Return([]reconcile.FileRecord{
		{ID: "f1", Name: "algebra-lecture-3.mp4", BatchID: "7"},
		{ID: "f4", Name: "y.mp4", BatchID: "8"},
	}, nil)
	vendor.On("ListFilesPage", mock.Anything, 3).Return([]reconcile.FileRecord{}, nil)

	attrs := new(mocks.AttributeLookup)
	attrs.On("LookupByFilename", mock.Anything, "algebra-lecture-3.mp4").Return([]reconcile.FileAttributes{}, nil)
	attrs.On("LookupByFilename", mock.Anything, "geo.mp4").Return([]reconcile.FileAttributes{
		{Filename: "geo.mp4", CourseIdentifier: "C2", SegmentID: "s9"},
	}, nil)
	attrs.On("LookupByFilename", mock.Anything, "x.mp4").Return([]reconcile.FileAttributes{}, nil)
	attrs.On("LookupByFilename", mock.Anything, "y.mp4").Return([]reconcile.FileAttributes{
		{Filename: "y.mp4", CourseIdentifier: "C2", SegmentID: "missing"},
	}, nil)

	spec := &reconcile.Spec{
		Batches:   vendor,
		Files:     vendor,
		Curricula: curriculum.NewResolver(attrs, store, zap.NewNop()),
		Segments:  curriculum.NewSegmentResolver(),
	}

	result, err := reconcile.NewEngine(spec, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, reconcile.Tallies{
		Found:              2,
		Skipped:            1,
		Duplicates:         1,
		UnresolvedSegments: 1,
		AmbiguousTitles:    1,
	}, result.Tallies)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, reconcile.Row{
		Filename:     "algebra-lecture-3.mp4",
		BatchName:    "Algebra I",
		SegmentTitle: "Lecture 3",
		FileID:       "f1",
		VideoID:      "v3",
		Distance:     2,
	}, result.Rows[0])
	assert.Equal(t, 0, result.Rows[1].Distance)

	report := reconcile.BuildReport(result, reconcile.DefaultThreshold)
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf))
	assert.Equal(t, "file_id,video_id\nf1,v3\nf2,s9\n", buf.String())

	strict := reconcile.BuildReport(result, 1)
	assert.Len(t, strict.Accepted, 1)
	assert.Len(t, strict.Indeterminate, 1)

	vendor.AssertExpectations(t)
}

func TestStore_SQLite(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	c, err := store.FindByIdentifier(ctx, "C1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, [][]reconcile.Segment{
		{{SegmentID: "v3", Title: "Lecture 3"}},
		{{SegmentID: "v4", Title: "Lecture 4"}},
	}, c.Segments)

	missing, err := store.FindByIdentifier(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	matches, err := store.FindByTitlePattern(ctx, "ALGEBRA")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = store.FindByTitlePattern(ctx, "algebra i")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "C1", matches[0].Identifier)
}
