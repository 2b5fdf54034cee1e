package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CampaignState stores the serialized allocation posterior for one naming
// campaign. Single writer per campaign; the JSON blob is the flat
// {alphas, betas, seed} record owned by business/allocation.
type CampaignState struct {
	Campaign  string         `gorm:"column:campaign;primaryKey" json:"campaign"`
	State     datatypes.JSON `gorm:"column:state;type:jsonb;not null" json:"state"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CampaignState) TableName() string {
	return "campaign_states"
}
