// internal/model/snapshot.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// 保存キー (プロフィールは固定キー、デイリープランは日付サフィックス付き)
const (
	ProfileRecordKey = "titan_profile"
	PlanRecordPrefix = "titan_plan_"
	RecordDateLayout = "2006-01-02"
)

// PlanRecordKey は日付に対応するデイリープランのキーを返します
func PlanRecordKey(date string) string {
	return PlanRecordPrefix + date
}

// SnapshotRecord はプレイヤーごとのキー・値レコード。値はスナップショット全体のJSON。
type SnapshotRecord struct {
	ID        uint           `gorm:"primaryKey"`
	PlayerID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_player_record_key"`
	RecordKey string         `gorm:"type:varchar(64);not null;uniqueIndex:uq_player_record_key"`
	Value     datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SnapshotRecord) TableName() string {
	return "snapshot_records"
}
