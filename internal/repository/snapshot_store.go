package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go_titan_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// プロフィール・プランの両リポジトリが使うキー・値レコードの共通操作

func insertRecord(ctx context.Context, db *gorm.DB, playerID uuid.UUID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	record := &model.SnapshotRecord{PlayerID: playerID, RecordKey: key, Value: datatypes.JSON(raw)}
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicateKey(err) {
			return model.ErrConflict
		}
		return err
	}
	return nil
}

// upsertRecord はレコードを丸ごと上書きします (無ければ作成)
func upsertRecord(ctx context.Context, db *gorm.DB, playerID uuid.UUID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	record := &model.SnapshotRecord{PlayerID: playerID, RecordKey: key, Value: datatypes.JSON(raw)}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(record).Error
}

// findRecord はレコードを読み出して out にデコードします。無ければ model.ErrNotFound。
func findRecord(ctx context.Context, db *gorm.DB, playerID uuid.UUID, key string, out any) error {
	var record model.SnapshotRecord
	err := db.WithContext(ctx).
		Where("player_id = ? AND record_key = ?", playerID, key).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrNotFound
		}
		return err
	}
	if err := json.Unmarshal(record.Value, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}
