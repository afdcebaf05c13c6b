package reconcile

import "context"

// BatchLister lists every batch of the transcription vendor in one call.
type BatchLister interface {
	ListBatches(ctx context.Context) ([]Batch, error)
}

// FilePager returns one page of the vendor's file registry.
// Pages are numbered from 1; an empty page ends the stream.
type FilePager interface {
	ListFilesPage(ctx context.Context, page int) ([]FileRecord, error)
}

// AttributeLookup asks the attribute service what it knows about a filename.
// It may return zero, one or several records.
type AttributeLookup interface {
	LookupByFilename(ctx context.Context, filename string) ([]FileAttributes, error)
}

// CurriculumStore reads curricula from the document store.
type CurriculumStore interface {
	// FindByTitlePattern returns every curriculum whose title contains pattern, ignoring case.
	FindByTitlePattern(ctx context.Context, pattern string) ([]Curriculum, error)

	// FindByIdentifier returns the curriculum with the given identifier, or nil.
	FindByIdentifier(ctx context.Context, identifier string) (*Curriculum, error)
}

// CurriculumResolver decides which curriculum a file belongs to.
// A returned error is fatal to the run; an unresolved file is a Resolution without curriculum.
type CurriculumResolver interface {
	Resolve(ctx context.Context, batchName string, file FileRecord) (Resolution, error)
}

// SegmentResolver picks the segment of curriculum a file transcribes.
// An empty segmentID means no authoritative hint is available.
type SegmentResolver interface {
	ResolveSegment(curriculum *Curriculum, filename, segmentID string) (SegmentMatch, Reason, bool)
}
