package integrity

import (
	"context"

	"video-id-finder/core/reconcile"
	"video-id-finder/core/storage"
	"video-id-finder/feature/curriculum"
	"video-id-finder/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SampleFilename is looked up to check the attribute service.
const SampleFilename = "integrity-check.mp4"

// Service handles integrity checks.
type Service struct {
	db         *gorm.DB
	client     storage.Client
	bucket     string
	region     string
	batches    reconcile.BatchLister
	attributes reconcile.AttributeLookup
	logger     *zap.Logger
}

// Deps lists what the checks inspect. Nil members skip their check.
type Deps struct {
	DB         *gorm.DB
	Storage    storage.Client
	Bucket     string
	Region     string
	Batches    reconcile.BatchLister
	Attributes reconcile.AttributeLookup
}

// NewService creates a new integrity service.
func NewService(deps Deps, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:         deps.DB,
		client:     deps.Storage,
		bucket:     deps.Bucket,
		region:     deps.Region,
		batches:    deps.Batches,
		attributes: deps.Attributes,
		logger:     logger,
	}
}

// Report combines every check that could run.
type Report struct {
	Schema   *checks.SchemaReport    `json:"schema,omitempty"`
	Archive  *checks.ArchiveReport   `json:"archive,omitempty"`
	Upstream []checks.UpstreamReport `json:"upstream"`
	Errors   map[string]string       `json:"errors,omitempty"`
	Healthy  bool                    `json:"healthy"`
}

// CheckSchema verifies the curriculum tables.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, curriculum.RequiredColumns())
}

// CheckArchive inspects the report bucket.
func (s *Service) CheckArchive(ctx context.Context) (*checks.ArchiveReport, error) {
	if s.client == nil {
		return nil, ErrArchiveNotConfigured
	}
	return checks.CheckArchive(ctx, s.client, s.bucket)
}

// FixArchive creates the report bucket if needed.
func (s *Service) FixArchive(ctx context.Context) error {
	if s.client == nil {
		return ErrArchiveNotConfigured
	}
	return checks.FixArchive(ctx, s.client, s.bucket, s.region, s.logger)
}

// CheckUpstream checks the vendor and the attribute service.
func (s *Service) CheckUpstream(ctx context.Context) []checks.UpstreamReport {
	reports := []checks.UpstreamReport{}
	if s.batches != nil {
		reports = append(reports, checks.CheckVendor(ctx, s.batches))
	}
	if s.attributes != nil {
		reports = append(reports, checks.CheckAttributes(ctx, s.attributes, SampleFilename))
	}
	return reports
}

// CheckAll runs every configured check.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{Healthy: true, Errors: map[string]string{}}

	if s.db != nil {
		schema, err := s.CheckSchema()
		if err != nil {
			report.Errors["schema"] = err.Error()
			report.Healthy = false
		} else {
			report.Schema = schema
			report.Healthy = report.Healthy && schema.Matched
		}
	}

	if s.client != nil {
		archive, err := s.CheckArchive(ctx)
		if err != nil {
			report.Errors["archive"] = err.Error()
			report.Healthy = false
		} else {
			report.Archive = archive
			report.Healthy = report.Healthy && archive.BucketExists
		}
	}

	report.Upstream = s.CheckUpstream(ctx)
	for _, u := range report.Upstream {
		if !u.Reachable {
			report.Healthy = false
		}
	}

	if !report.Healthy {
		s.logger.Warn("Integrity check found problems", zap.Any("errors", report.Errors))
	}
	return report
}
