package videoid_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"video-id-finder/core/reconcile"
	"video-id-finder/core/storage/mocks"
	"video-id-finder/feature/videoid"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const runID = "9b2f6f0e-3c1a-4d0e-8d7a-2f1c5e6b7a80"

func TestService_Run(t *testing.T) {
	svc := videoid.NewService(newSpec(&fakeVendor{files: sampleFiles()}), 2, nil, zap.NewNop())

	_, err := svc.Latest()
	assert.ErrorIs(t, err, videoid.ErrNoReport)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Accepted, 1)
	assert.Equal(t, "f1", report.Accepted[0].FileID)
	assert.Equal(t, "v3", report.Accepted[0].VideoID)
	require.Len(t, report.Indeterminate, 1)
	assert.Equal(t, "f2", report.Indeterminate[0].FileID)
	assert.Equal(t, 2, report.Tallies.Found)
	assert.Equal(t, 1, report.Tallies.UnresolvedSegments)
	assert.Equal(t, 1, report.Tallies.Indeterminate)

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Same(t, report, latest)
}

func TestService_RunFreshEnginePerRun(t *testing.T) {
	v := &fakeVendor{files: sampleFiles()}
	svc := videoid.NewService(newSpec(v), 2, nil, nil)

	first, err := svc.Run(context.Background())
	require.NoError(t, err)
	second, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.Tallies, second.Tallies)
	assert.Equal(t, int32(2), v.runs.Load())
}

func TestService_RunFatalKeepsPreviousReport(t *testing.T) {
	v := &fakeVendor{files: sampleFiles()}
	svc := videoid.NewService(newSpec(v), 2, nil, nil)

	first, err := svc.Run(context.Background())
	require.NoError(t, err)

	v.err = reconcile.TransportError(errors.New("connection reset"), "failed to list batches")
	report, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, reconcile.IsFatal(err))

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Equal(t, first.RunID, latest.RunID)
}

func TestService_ConcurrentRunsShareOneEngine(t *testing.T) {
	v := &fakeVendor{files: sampleFiles(), gate: make(chan struct{}), started: make(chan struct{})}
	svc := videoid.NewService(newSpec(v), 2, nil, nil)

	var wg sync.WaitGroup
	reports := make([]*reconcile.Report, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		reports[0], _ = svc.Run(context.Background())
	}()
	<-v.started

	// The second caller joins while the first is blocked inside the engine.
	wg.Add(1)
	go func() {
		defer wg.Done()
		reports[1], _ = svc.Run(context.Background())
	}()

	close(v.gate)
	wg.Wait()

	require.NotNil(t, reports[0])
	require.NotNil(t, reports[1])
	assert.LessOrEqual(t, v.runs.Load(), int32(2))
	if v.runs.Load() == 1 {
		assert.Same(t, reports[0], reports[1])
	}
}

func TestService_RunArchives(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "reports", mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "/accepted.csv")
	}), mock.Anything, mock.AnythingOfType("int64"), minio.PutObjectOptions{ContentType: "text/csv"}).
		Return(minio.UploadInfo{}, nil).Once()
	client.On("PutObject", mock.Anything, "reports", mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "/diagnostics.json")
	}), mock.Anything, mock.AnythingOfType("int64"), minio.PutObjectOptions{ContentType: "application/json"}).
		Return(minio.UploadInfo{}, nil).Once()

	svc := videoid.NewService(newSpec(&fakeVendor{files: sampleFiles()}), 2, videoid.NewArchive(client, "reports"), nil)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	client.AssertExpectations(t)
}

func TestService_RunArchiveFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	svc := videoid.NewService(newSpec(&fakeVendor{files: sampleFiles()}), 2, videoid.NewArchive(client, "reports"), nil)

	_, err := svc.Run(context.Background())
	assert.ErrorContains(t, err, "bucket gone")

	// The computed report is still served.
	_, err = svc.Latest()
	assert.NoError(t, err)
}

func TestService_ArchiveDisabled(t *testing.T) {
	svc := videoid.NewService(newSpec(&fakeVendor{}), 2, nil, nil)

	_, err := svc.ArchivedCSV(context.Background(), runID)
	assert.ErrorIs(t, err, videoid.ErrArchiveDisabled)

	_, err = svc.ListArchivedRuns(context.Background())
	assert.ErrorIs(t, err, videoid.ErrArchiveDisabled)
}

func TestArchive_AcceptedCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "reports", "reports/"+runID+"/accepted.csv", minio.GetObjectOptions{}).
			Return(io.NopCloser(strings.NewReader("file_id,video_id\nf1,v3\n")), nil)

		data, err := videoid.NewArchive(client, "reports").AcceptedCSV(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, "file_id,video_id\nf1,v3\n", string(data))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "reports", mock.Anything, mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		_, err := videoid.NewArchive(client, "reports").AcceptedCSV(ctx, runID)
		assert.ErrorIs(t, err, videoid.ErrRunNotFound)
	})

	t.Run("InvalidID", func(t *testing.T) {
		client := new(mocks.Client)

		_, err := videoid.NewArchive(client, "reports").AcceptedCSV(ctx, "../secrets")
		assert.ErrorIs(t, err, videoid.ErrInvalidRunID)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestArchive_ListRuns(t *testing.T) {
	ctx := context.Background()

	t.Run("Groups", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", ctx, "reports", minio.ListObjectsOptions{Prefix: "reports/"}).Return(objectChan(
			minio.ObjectInfo{Key: "reports/b-run/"},
			minio.ObjectInfo{Key: "reports/a-run/accepted.csv"},
			minio.ObjectInfo{Key: "reports/a-run/diagnostics.json"},
			minio.ObjectInfo{Key: "reports/"},
		))

		runs, err := videoid.NewArchive(client, "reports").ListRuns(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a-run", "b-run"}, runs)
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", ctx, "reports", mock.Anything).Return(objectChan(
			minio.ObjectInfo{Err: errors.New("access denied")},
		))

		_, err := videoid.NewArchive(client, "reports").ListRuns(ctx)
		assert.ErrorContains(t, err, "access denied")
	})
}
