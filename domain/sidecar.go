package domain

import (
	"time"

	"gorm.io/datatypes"
)

// SidecarEvent is one structured audit record describing one step of the
// naming pipeline. The JSONL log files replayed by business/replay carry one
// of these per line; the same shape is appended to postgres by the campaign
// service for later export.
type SidecarEvent struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	SchemaVersion string `gorm:"column:schema_version;not null" json:"schema_version"`
	EventID       string `gorm:"column:event_id;not null;uniqueIndex" json:"event_id"`
	Business      string `gorm:"column:business;not null" json:"business"`
	Round         string `gorm:"column:round;not null" json:"round"`
	RunDate       string `gorm:"column:run_date;not null" json:"run_date"`
	Stage         string `gorm:"column:stage;not null" json:"stage"`
	Candidate     string `gorm:"column:candidate;not null" json:"candidate"`

	Payload   datatypes.JSONMap `gorm:"column:payload;type:jsonb" json:"payload,omitempty"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (SidecarEvent) TableName() string {
	return "sidecar_events"
}

// SidecarRequiredFields lists the JSON keys every replayed event must carry.
// Order matters only for error message stability.
func SidecarRequiredFields() []string {
	return []string{
		"schema_version",
		"event_id",
		"business",
		"round",
		"run_date",
		"stage",
		"candidate",
	}
}
