package postgres

import (
	"context"

	"gorm.io/gorm"

	"namelab/business/campaign"
	"namelab/domain"
)

// SidecarEventRepository is the append-only audit store. Events are never
// updated or deleted here; export and replay happen elsewhere.
type SidecarEventRepository struct {
	DB *gorm.DB
}

var _ campaign.EventRepository = (*SidecarEventRepository)(nil)

func NewSidecarEventRepository(db *gorm.DB) *SidecarEventRepository {
	return &SidecarEventRepository{DB: db}
}

func (r *SidecarEventRepository) SaveEvent(ctx context.Context, event domain.SidecarEvent) error {
	return r.DB.WithContext(ctx).Create(&event).Error
}
