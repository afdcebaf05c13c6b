package curriculum

import (
	"context"

	"video-id-finder/core/reconcile"

	"go.uber.org/zap"
)

// Resolver finds the curriculum of a file: first from the attribute service,
// then by matching the batch name against curriculum titles.
type Resolver struct {
	attributes reconcile.AttributeLookup
	store      reconcile.CurriculumStore
	logger     *zap.Logger
}

// NewResolver creates a new curriculum resolver.
func NewResolver(attributes reconcile.AttributeLookup, store reconcile.CurriculumStore, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		attributes: attributes,
		store:      store,
		logger:     logger,
	}
}

// Resolve runs the attribute phase and, when it yields no curriculum, the
// batch-title phase. Lookup errors are returned as-is and end the run.
func (r *Resolver) Resolve(ctx context.Context, batchName string, file reconcile.FileRecord) (reconcile.Resolution, error) {
	res, err := r.byAttributes(ctx, file)
	if err != nil {
		return reconcile.Resolution{}, err
	}
	if res.Resolved() {
		return res, nil
	}

	curriculum, reason, err := r.byBatchName(ctx, batchName)
	if err != nil {
		return reconcile.Resolution{}, err
	}
	res.TitleReason = reason
	if curriculum != nil {
		res.Curriculum = curriculum
		res.Source = reconcile.SourceBatchTitle
	}
	return res, nil
}

func (r *Resolver) byAttributes(ctx context.Context, file reconcile.FileRecord) (reconcile.Resolution, error) {
	attrs, err := r.attributes.LookupByFilename(ctx, file.Name)
	if err != nil {
		return reconcile.Resolution{}, err
	}

	switch {
	case len(attrs) == 0:
		r.logger.Debug("No courses appear to use filename", zap.String("filename", file.Name))
		return reconcile.Resolution{AttributeReason: reconcile.ReasonNoAttributes}, nil
	case len(attrs) > 1:
		r.logger.Warn("Too many courses appear to use filename",
			zap.String("filename", file.Name),
			zap.Int("matches", len(attrs)),
		)
		return reconcile.Resolution{AttributeReason: reconcile.ReasonAmbiguousAttributes}, nil
	}

	attr := attrs[0]
	curriculum, err := r.store.FindByIdentifier(ctx, attr.CourseIdentifier)
	if err != nil {
		return reconcile.Resolution{}, err
	}
	if curriculum == nil {
		r.logger.Warn("Attribute service names an unknown course",
			zap.String("filename", file.Name),
			zap.String("course", attr.CourseIdentifier),
		)
		return reconcile.Resolution{AttributeReason: reconcile.ReasonUnknownCourse}, nil
	}

	return reconcile.Resolution{
		Curriculum: curriculum,
		SegmentID:  attr.SegmentID,
		Source:     reconcile.SourceAttributes,
	}, nil
}

func (r *Resolver) byBatchName(ctx context.Context, batchName string) (*reconcile.Curriculum, reconcile.Reason, error) {
	// An empty name matches every title, so it only resolves when the catalog holds one curriculum.
	curricula, err := r.store.FindByTitlePattern(ctx, batchName)
	if err != nil {
		return nil, reconcile.ReasonNone, err
	}

	switch len(curricula) {
	case 1:
		return &curricula[0], reconcile.ReasonNone, nil
	case 0:
		return nil, reconcile.ReasonNoTitleMatch, nil
	default:
		r.logger.Warn("Batch name matches several curricula",
			zap.String("batch", batchName),
			zap.Int("matches", len(curricula)),
		)
		return nil, reconcile.ReasonAmbiguousTitle, nil
	}
}
