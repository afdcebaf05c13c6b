package cmd

import (
	"context"
	"fmt"
	"time"

	"video-id-finder/core/clapi"
	"video-id-finder/core/config"
	"video-id-finder/core/database"
	"video-id-finder/core/reconcile"
	"video-id-finder/core/storage"
	"video-id-finder/core/threeplay"
	"video-id-finder/feature/curriculum"
	"video-id-finder/feature/videoid"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// clients holds the remote collaborators of a run.
type clients struct {
	vendor     *threeplay.Client
	attributes *clapi.Client
}

func buildClients(cfg *config.Config) (*clients, error) {
	vendor, err := threeplay.NewClient(cfg.ThreePlay)
	if err != nil {
		return nil, fmt.Errorf("failed to create threeplay client: %w", err)
	}

	attributes, err := clapi.NewClient(cfg.CLAPI)
	if err != nil {
		return nil, fmt.Errorf("failed to create clapi client: %w", err)
	}

	return &clients{vendor: vendor, attributes: attributes}, nil
}

// buildSpec wires the collaborators of a reconciliation run.
func buildSpec(cfg *config.Config, db *gorm.DB, c *clients, l *zap.Logger) *reconcile.Spec {
	return &reconcile.Spec{
		Batches:   c.vendor,
		Files:     c.vendor,
		Curricula: curriculum.NewResolver(c.attributes, curriculum.NewStore(db), l),
		Segments:  curriculum.NewSegmentResolver(),
		MaxPages:  cfg.Reconcile.MaxPages,
	}
}

// connectCurriculum opens the curriculum database and checks its schema.
func connectCurriculum(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := curriculum.VerifySchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

// buildStorage connects to the report bucket, creating it when missing.
// It returns nil when storage is off.
func buildStorage(ctx context.Context, cfg *config.Config, enabled bool) (storage.Client, error) {
	if !enabled {
		return nil, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		return nil, err
	}
	return client, nil
}

// buildArchive returns the report archive, or nil without a storage client.
func buildArchive(client storage.Client, cfg *config.Config) *videoid.Archive {
	if client == nil {
		return nil
	}
	return videoid.NewArchive(client, cfg.Storage.Bucket)
}
