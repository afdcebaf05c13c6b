package videoid_test

import (
	"context"
	"sync"
	"sync/atomic"

	"video-id-finder/core/reconcile"

	"github.com/minio/minio-go/v7"
)

// fakeVendor serves one page of files; gate, when set, blocks ListBatches until closed.
type fakeVendor struct {
	files   []reconcile.FileRecord
	err     error
	gate    chan struct{}
	started chan struct{}
	once    sync.Once
	runs    atomic.Int32
}

func (f *fakeVendor) ListBatches(ctx context.Context) ([]reconcile.Batch, error) {
	f.runs.Add(1)
	if f.gate != nil {
		f.once.Do(func() { close(f.started) })
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return []reconcile.Batch{{ID: "b1", Name: "Algebra I"}}, nil
}

func (f *fakeVendor) ListFilesPage(ctx context.Context, page int) ([]reconcile.FileRecord, error) {
	if page == 1 {
		return f.files, nil
	}
	return nil, nil
}

var algebra = &reconcile.Curriculum{
	Identifier: "ALG-1",
	Title:      "Algebra I",
	Segments:   [][]reconcile.Segment{{{SegmentID: "v3", Title: "Lecture 3"}}},
}

type fakeCurricula struct{}

func (fakeCurricula) Resolve(ctx context.Context, batchName string, file reconcile.FileRecord) (reconcile.Resolution, error) {
	return reconcile.Resolution{Curriculum: algebra, Source: reconcile.SourceBatchTitle}, nil
}

// fakeSegments maps filenames to distances against the single segment.
type fakeSegments map[string]int

func (f fakeSegments) ResolveSegment(c *reconcile.Curriculum, filename, segmentID string) (reconcile.SegmentMatch, reconcile.Reason, bool) {
	d, ok := f[filename]
	if !ok {
		return reconcile.SegmentMatch{}, reconcile.ReasonNoSegments, false
	}
	return reconcile.SegmentMatch{Segment: c.Segments[0][0], Distance: d}, reconcile.ReasonNone, true
}

func newSpec(v *fakeVendor) *reconcile.Spec {
	return &reconcile.Spec{
		Batches:   v,
		Files:     v,
		Curricula: fakeCurricula{},
		Segments:  fakeSegments{"close.mp4": 1, "far.mp4": 7},
	}
}

func sampleFiles() []reconcile.FileRecord {
	return []reconcile.FileRecord{
		{ID: "f1", Name: "close.mp4", BatchID: "b1"},
		{ID: "f2", Name: "far.mp4", BatchID: "b1"},
		{ID: "f3", Name: "lost.mp4", BatchID: "b1"},
	}
}

func objectChan(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}
