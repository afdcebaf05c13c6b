package videoid

import (
	"context"
	"sync"

	"video-id-finder/core/logger"
	"video-id-finder/core/reconcile"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNoReport is returned when no run has completed since startup.
	ErrNoReport = errors.New("no reconciliation report available")
	// ErrArchiveDisabled is returned for archive reads when archival is off.
	ErrArchiveDisabled = errors.New("report archive is disabled")
)

// Service runs reconciliations and keeps the most recent report.
type Service struct {
	spec      *reconcile.Spec
	threshold int
	archive   *Archive
	logger    *zap.Logger

	sf     singleflight.Group
	mu     sync.RWMutex
	latest *reconcile.Report
}

// NewService creates a run service. archive may be nil to disable archival.
func NewService(spec *reconcile.Spec, threshold int, archive *Archive, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		spec:      spec,
		threshold: threshold,
		archive:   archive,
		logger:    logger,
	}
}

// Run performs one reconciliation and returns its report. Callers arriving while a
// run is in flight wait for it and share its report.
func (s *Service) Run(ctx context.Context) (*reconcile.Report, error) {
	v, err, shared := s.sf.Do("run", func() (any, error) {
		return s.run(ctx)
	})
	if shared {
		s.logger.Debug("Joined in-flight reconciliation")
	}
	if err != nil {
		return nil, err
	}
	return v.(*reconcile.Report), nil
}

func (s *Service) run(ctx context.Context) (*reconcile.Report, error) {
	engine := reconcile.NewEngine(s.spec, s.logger)

	result, err := engine.Run(ctx)
	if err != nil {
		s.logger.Error("Reconciliation aborted", zap.Error(err), zap.Bool("fatal", reconcile.IsFatal(err)))
		return nil, err
	}

	report := reconcile.BuildReport(result, s.threshold)
	s.mu.Lock()
	s.latest = report
	s.mu.Unlock()

	if s.archive != nil {
		l := logger.WithRunID(s.logger, report.RunID)
		if err := s.archive.Store(ctx, report); err != nil {
			l.Error("Failed to archive report", zap.Error(err))
			return nil, errors.Wrapf(err, "run %s completed but was not archived", report.RunID)
		}
		l.Info("Archived report", zap.Stringer("location", s.archive))
	}

	return report, nil
}

// Latest returns the report of the most recent successful run.
func (s *Service) Latest() (*reconcile.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, ErrNoReport
	}
	return s.latest, nil
}

// ArchivedCSV returns the accepted table archived for runID.
func (s *Service) ArchivedCSV(ctx context.Context, runID string) ([]byte, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.AcceptedCSV(ctx, runID)
}

// ListArchivedRuns returns the ids of archived runs.
func (s *Service) ListArchivedRuns(ctx context.Context) ([]string, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.ListRuns(ctx)
}
