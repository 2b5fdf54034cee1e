package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"namelab/business/allocation"
	"namelab/business/campaign"
	"namelab/domain"
)

type CampaignStateRepository struct {
	DB *gorm.DB
}

var _ campaign.StateRepository = (*CampaignStateRepository)(nil)

func NewCampaignStateRepository(db *gorm.DB) *CampaignStateRepository {
	return &CampaignStateRepository{DB: db}
}

func (r *CampaignStateRepository) GetState(ctx context.Context, name string) (*allocation.State, error) {
	var row domain.CampaignState

	err := r.DB.WithContext(ctx).
		Where("campaign = ?", name).
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state allocation.State
	if err := json.Unmarshal(row.State, &state); err != nil {
		return nil, fmt.Errorf("decode stored state for %q: %w", name, err)
	}
	return &state, nil
}

func (r *CampaignStateRepository) SaveState(ctx context.Context, name string, state allocation.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state for %q: %w", name, err)
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
		}).
		Create(&domain.CampaignState{Campaign: name, State: raw}).Error
}

func (r *CampaignStateRepository) DeleteState(ctx context.Context, name string) error {
	return r.DB.WithContext(ctx).
		Where("campaign = ?", name).
		Delete(&domain.CampaignState{}).Error
}
