package reconcile

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spec bundles the collaborators and settings of a reconciliation run.
type Spec struct {
	// Batches lists the vendor's batches once, before file iteration.
	Batches BatchLister

	// Files streams the vendor's files page by page.
	Files FilePager

	// Curricula resolves the curriculum of each file.
	Curricula CurriculumResolver

	// Segments picks the segment within the resolved curriculum.
	Segments SegmentResolver

	// MaxPages bounds the file stream. Zero disables the bound.
	MaxPages int
}

// Engine runs one reconciliation. Its dedup set and tallies belong to that run
// only, so a fresh Engine must be built for every run.
type Engine struct {
	spec   *Spec
	logger *zap.Logger

	batches map[string]Batch
	seen    map[string]struct{}
	result  Result
	ran     bool
}

// NewEngine creates an engine for a single run.
func NewEngine(spec *Spec, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		spec:   spec,
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

// Run loads the batches, streams every page of files and resolves each file
// in order. Any collaborator error aborts the run and no result is returned.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.ran {
		return nil, errors.New("engine already ran; build a new engine per run")
	}
	e.ran = true

	e.result = Result{
		RunID:     uuid.NewString(),
		Rows:      []Row{},
		StartedAt: time.Now(),
	}
	e.logger = e.logger.With(zap.String("run_id", e.result.RunID))

	if err := e.loadBatches(ctx); err != nil {
		return nil, err
	}

	for page := 1; ; page++ {
		if e.spec.MaxPages > 0 && page > e.spec.MaxPages {
			return nil, errors.Mark(
				errors.Newf("file stream did not end within %d pages", e.spec.MaxPages),
				ErrIntegrity,
			)
		}

		files, err := e.spec.Files.ListFilesPage(ctx, page)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list files page %d", page)
		}
		if len(files) == 0 {
			break
		}
		e.result.Pages++
		e.logger.Debug("Processing page", zap.Int("page", page), zap.Int("files", len(files)))

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := e.processFile(ctx, file); err != nil {
				return nil, err
			}
		}
	}

	e.result.FinishedAt = time.Now()
	t := e.result.Tallies
	e.logger.Info("Reconciliation finished",
		zap.Int("pages", e.result.Pages),
		zap.Int("found", t.Found),
		zap.Int("skipped", t.Skipped),
		zap.Int("duplicates", t.Duplicates),
		zap.Int("unresolved_segments", t.UnresolvedSegments),
	)

	result := e.result
	return &result, nil
}

func (e *Engine) loadBatches(ctx context.Context) error {
	batches, err := e.spec.Batches.ListBatches(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list batches")
	}

	e.batches = make(map[string]Batch, len(batches))
	for _, b := range batches {
		e.batches[b.ID] = b
	}
	e.logger.Info("Loaded batches", zap.Int("count", len(e.batches)))
	return nil
}

func (e *Engine) processFile(ctx context.Context, file FileRecord) error {
	batch, ok := e.batches[file.BatchID]
	if !ok {
		return errors.Mark(
			errors.Newf("file %s references unknown batch %s", file.ID, file.BatchID),
			ErrIntegrity,
		)
	}

	l := e.logger.With(
		zap.String("file_id", file.ID),
		zap.String("filename", file.Name),
		zap.String("batch", batch.Name),
	)

	res, err := e.spec.Curricula.Resolve(ctx, batch.Name, file)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve curriculum for file %s", file.ID)
	}

	if res.AttributeReason == ReasonAmbiguousAttributes {
		e.result.Tallies.AmbiguousAttributes++
	}
	if res.TitleReason == ReasonAmbiguousTitle {
		e.result.Tallies.AmbiguousTitles++
	}

	if !res.Resolved() {
		e.result.Tallies.Skipped++
		reason := res.TitleReason
		if reason == ReasonNone {
			reason = res.AttributeReason
		}
		e.unresolved(file, batch, OutcomeSkipped, reason)
		l.Warn("Unable to find corresponding curriculum", zap.String("reason", string(reason)))
		return nil
	}

	match, reason, ok := e.spec.Segments.ResolveSegment(res.Curriculum, file.Name, res.SegmentID)
	if !ok {
		e.result.Tallies.UnresolvedSegments++
		e.unresolved(file, batch, OutcomeUnresolvedSegment, reason)
		l.Warn("No segment matched in curriculum",
			zap.String("curriculum", res.Curriculum.Identifier),
			zap.String("segment_id", res.SegmentID),
			zap.String("reason", string(reason)),
		)
		return nil
	}

	if _, dup := e.seen[file.ID]; dup {
		e.result.Tallies.Duplicates++
		e.unresolved(file, batch, OutcomeDuplicate, ReasonNone)
		l.Debug("Duplicate file id discarded")
		return nil
	}

	e.seen[file.ID] = struct{}{}
	e.result.Rows = append(e.result.Rows, Row{
		Filename:     file.Name,
		BatchName:    batch.Name,
		SegmentTitle: match.Title,
		FileID:       file.ID,
		VideoID:      match.SegmentID,
		Distance:     match.Distance,
	})
	e.result.Tallies.Found++
	l.Debug("Found segment for file",
		zap.String("source", string(res.Source)),
		zap.String("video_id", match.SegmentID),
		zap.Int("distance", match.Distance),
	)
	return nil
}

func (e *Engine) unresolved(file FileRecord, batch Batch, outcome Outcome, reason Reason) {
	e.result.Unresolved = append(e.result.Unresolved, Unresolved{
		FileID:    file.ID,
		Filename:  file.Name,
		BatchName: batch.Name,
		Outcome:   outcome,
		Reason:    reason,
	})
}
