package postgres

import (
	"context"

	"gorm.io/gorm"

	"namelab/business/campaign"
	"namelab/domain"
)

type CampaignRoundRepository struct {
	DB *gorm.DB
}

var _ campaign.RoundRepository = (*CampaignRoundRepository)(nil)

func NewCampaignRoundRepository(db *gorm.DB) *CampaignRoundRepository {
	return &CampaignRoundRepository{DB: db}
}

func (r *CampaignRoundRepository) SaveRound(ctx context.Context, round domain.CampaignRound) error {
	return r.DB.WithContext(ctx).Create(&round).Error
}

func (r *CampaignRoundRepository) FindByCampaign(ctx context.Context, name string) ([]domain.CampaignRound, error) {
	var rounds []domain.CampaignRound

	err := r.DB.WithContext(ctx).
		Where("campaign = ?", name).
		Order("created_at ASC").
		Find(&rounds).Error
	if err != nil {
		return nil, err
	}
	return rounds, nil
}
