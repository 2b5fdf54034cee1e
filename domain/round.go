package domain

import "time"

// RoundOutcome is the per-pattern aggregate of one generation round: how many
// candidates were checked against the registry and how many came back free.
type RoundOutcome struct {
	Pattern    Pattern `json:"pattern"`
	NChecked   int     `json:"n_checked"`
	NAvailable int     `json:"n_available"`
}

// CampaignRound is the persisted form of a recorded round, one row per
// (campaign, round, pattern).
type CampaignRound struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Campaign   string    `gorm:"column:campaign;not null;index" json:"campaign"`
	Round      string    `gorm:"column:round;not null" json:"round"`
	Pattern    string    `gorm:"column:pattern;not null" json:"pattern"`
	NChecked   int       `gorm:"column:n_checked;not null" json:"n_checked"`
	NAvailable int       `gorm:"column:n_available;not null" json:"n_available"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CampaignRound) TableName() string {
	return "campaign_rounds"
}

// Yield is the observed availability rate of one recorded round row.
func (r CampaignRound) Yield() float64 {
	if r.NChecked == 0 {
		return 0
	}
	return float64(r.NAvailable) / float64(r.NChecked)
}
