// Package storage wraps the MinIO client used to archive run reports.
//
// The Client interface covers the few operations the archive needs and is
// mocked in core/storage/mocks for unit tests. It works against AWS S3 and
// self-hosted MinIO alike.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
