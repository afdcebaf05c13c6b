package videoid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"video-id-finder/core/reconcile"
	"video-id-finder/core/storage"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const (
	reportsPrefix   = "reports/"
	acceptedObject  = "accepted.csv"
	diagnosticsFile = "diagnostics.json"
)

var (
	// ErrRunNotFound is returned when no archived report exists for a run id.
	ErrRunNotFound = errors.New("archived run not found")
	// ErrInvalidRunID is returned for run ids that are not UUIDs.
	ErrInvalidRunID = errors.New("invalid run id")
)

// Archive stores run reports in object storage under reports/<run_id>/.
type Archive struct {
	client storage.Client
	bucket string
}

// NewArchive creates an archive writing to bucket.
func NewArchive(client storage.Client, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket}
}

// Store uploads the accepted table and the full diagnostics of report.
func (a *Archive) Store(ctx context.Context, report *reconcile.Report) error {
	var csvBuf bytes.Buffer
	if err := report.WriteCSV(&csvBuf); err != nil {
		return errors.Wrap(err, "failed to encode accepted table")
	}
	if err := a.put(ctx, objectKey(report.RunID, acceptedObject), csvBuf.Bytes(), "text/csv"); err != nil {
		return err
	}

	diag, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode diagnostics")
	}
	return a.put(ctx, objectKey(report.RunID, diagnosticsFile), diag, "application/json")
}

func (a *Archive) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload %s", key)
	}
	return nil
}

// AcceptedCSV returns the archived accepted table of runID.
func (a *Archive) AcceptedCSV(ctx context.Context, runID string) ([]byte, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return nil, ErrInvalidRunID
	}

	key := objectKey(runID, acceptedObject)
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, a.translate(err, key)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, a.translate(err, key)
	}
	return data, nil
}

// ListRuns returns the ids of every archived run, sorted.
func (a *Archive) ListRuns(ctx context.Context) ([]string, error) {
	runs := []string{}
	seen := make(map[string]struct{})

	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: reportsPrefix}) {
		if obj.Err != nil {
			return nil, errors.Wrap(obj.Err, "failed to list archived runs")
		}
		id, _, _ := strings.Cut(strings.TrimPrefix(obj.Key, reportsPrefix), "/")
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		runs = append(runs, id)
	}

	sort.Strings(runs)
	return runs, nil
}

func (a *Archive) translate(err error, key string) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrRunNotFound
	}
	return errors.Wrapf(err, "failed to read %s", key)
}

func objectKey(runID, name string) string {
	return path.Join(reportsPrefix, runID, name)
}

// String describes the archive location.
func (a *Archive) String() string {
	return fmt.Sprintf("s3://%s/%s", a.bucket, reportsPrefix)
}
