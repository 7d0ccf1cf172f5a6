package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hotelops/hotel-ops-api/internal/repository"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

// entityStore implements repository.Store for one entity table. Writes go to
// the writer connection, reads to the reader connection, and every statement
// is scoped by tenant_id.
type entityStore[T tenancy.Record] struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func newEntityStore[T tenancy.Record](writerDB, readerDB *gorm.DB) *entityStore[T] {
	return &entityStore[T]{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (s *entityStore[T]) Create(ctx context.Context, record *T) error {
	return s.writerDB.WithContext(ctx).Create(record).Error
}

func (s *entityStore[T]) GetByID(ctx context.Context, tenantID, id string) (*T, error) {
	var record T
	err := s.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *entityStore[T]) List(ctx context.Context, tenantID string) ([]T, error) {
	var records []T
	err := s.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *entityStore[T]) Update(ctx context.Context, record *T) error {
	result := s.writerDB.WithContext(ctx).
		Model(record).
		Where("tenant_id = ? AND id = ?", (*record).GetTenantID(), (*record).GetID()).
		Select("*").
		Updates(*record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *entityStore[T]) Delete(ctx context.Context, tenantID, id string) error {
	var model T
	result := s.writerDB.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
