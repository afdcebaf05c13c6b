package mocks

import (
	"context"

	"video-id-finder/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// AttributeLookup is a mock implementation of reconcile.AttributeLookup
type AttributeLookup struct {
	mock.Mock
}

func (m *AttributeLookup) LookupByFilename(ctx context.Context, filename string) ([]reconcile.FileAttributes, error) {
	args := m.Called(ctx, filename)
	if attrs, ok := args.Get(0).([]reconcile.FileAttributes); ok {
		return attrs, args.Error(1)
	}
	return nil, args.Error(1)
}

// CurriculumStore is a mock implementation of reconcile.CurriculumStore
type CurriculumStore struct {
	mock.Mock
}

func (m *CurriculumStore) FindByTitlePattern(ctx context.Context, pattern string) ([]reconcile.Curriculum, error) {
	args := m.Called(ctx, pattern)
	if cs, ok := args.Get(0).([]reconcile.Curriculum); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CurriculumStore) FindByIdentifier(ctx context.Context, identifier string) (*reconcile.Curriculum, error) {
	args := m.Called(ctx, identifier)
	if c, ok := args.Get(0).(*reconcile.Curriculum); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// Vendor is a mock implementation of reconcile.BatchLister and reconcile.FilePager
type Vendor struct {
	mock.Mock
}

func (m *Vendor) ListBatches(ctx context.Context) ([]reconcile.Batch, error) {
	args := m.Called(ctx)
	if bs, ok := args.Get(0).([]reconcile.Batch); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Vendor) ListFilesPage(ctx context.Context, page int) ([]reconcile.FileRecord, error) {
	args := m.Called(ctx, page)
	if fs, ok := args.Get(0).([]reconcile.FileRecord); ok {
		return fs, args.Error(1)
	}
	return nil, args.Error(1)
}
