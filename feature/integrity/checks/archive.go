package checks

import (
	"context"
	"fmt"

	"video-id-finder/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ArchivePrefix is where run reports live in the bucket.
const ArchivePrefix = "reports/"

// ArchiveReport is the result of an archive bucket check.
type ArchiveReport struct {
	Bucket       string `json:"bucket"`
	BucketExists bool   `json:"bucket_exists"`
	ArchivedRuns int    `json:"archived_runs"`
}

// CheckArchive reports whether the archive bucket exists and how many runs it holds.
func CheckArchive(ctx context.Context, client storage.Client, bucket string) (*ArchiveReport, error) {
	report := &ArchiveReport{Bucket: bucket}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: ArchivePrefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archived runs: %w", obj.Err)
		}
		report.ArchivedRuns++
	}

	return report, nil
}

// FixArchive creates the archive bucket when it is missing.
func FixArchive(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		logger.Error("Failed to create archive bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Archive bucket ready", zap.String("bucket", bucket))
	return nil
}
