//go:generate mockery --name PlanRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanRepository は日付ごとのデイリープラン (キー titan_plan_YYYY-MM-DD) を扱います
type PlanRepository interface {
	FindByDate(ctx context.Context, db *gorm.DB, playerID uuid.UUID, date string) (*model.DailyPlan, error)
	// FindBetween は from..to (両端含む) の日付のプランを日付順に返します
	FindBetween(ctx context.Context, db *gorm.DB, playerID uuid.UUID, from, to string) ([]model.DailyPlan, error)
	// Create はその日のプランを新規作成します。既にあれば model.ErrConflict。
	Create(ctx context.Context, db *gorm.DB, playerID uuid.UUID, plan *model.DailyPlan) error
	Save(ctx context.Context, db *gorm.DB, playerID uuid.UUID, plan *model.DailyPlan) error
	DeleteAll(ctx context.Context, db *gorm.DB, playerID uuid.UUID) (int64, error)
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

func (r *gormPlanRepository) FindByDate(ctx context.Context, db *gorm.DB, playerID uuid.UUID, date string) (*model.DailyPlan, error) {
	logger := middleware.GetLogger(ctx)

	var plan model.DailyPlan
	if err := findRecord(ctx, db, playerID, model.PlanRecordKey(date), &plan); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Debug("Daily plan not found", "player_id", playerID.String(), "date", date)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding daily plan in DB", "error", err, "player_id", playerID.String(), "date", date)
		return nil, fmt.Errorf("gormPlanRepository.FindByDate: %w", err)
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindBetween(ctx context.Context, db *gorm.DB, playerID uuid.UUID, from, to string) ([]model.DailyPlan, error) {
	logger := middleware.GetLogger(ctx)

	// YYYY-MM-DD は辞書順 = 日付順なのでキーの範囲検索で絞り込める
	var records []model.SnapshotRecord
	err := db.WithContext(ctx).
		Where("player_id = ? AND record_key BETWEEN ? AND ?", playerID, model.PlanRecordKey(from), model.PlanRecordKey(to)).
		Order("record_key ASC").
		Find(&records).Error
	if err != nil {
		logger.Error("Error listing daily plans in DB", "error", err, "player_id", playerID.String())
		return nil, fmt.Errorf("gormPlanRepository.FindBetween: %w", err)
	}

	plans := make([]model.DailyPlan, 0, len(records))
	for _, rec := range records {
		var plan model.DailyPlan
		if err := json.Unmarshal(rec.Value, &plan); err != nil {
			// 壊れたレコードは読み飛ばす
			logger.Warn("Skipping unreadable daily plan record", "error", err, "record_key", rec.RecordKey)
			continue
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *gormPlanRepository) Create(ctx context.Context, db *gorm.DB, playerID uuid.UUID, plan *model.DailyPlan) error {
	logger := middleware.GetLogger(ctx)

	if plan.Date == "" {
		return fmt.Errorf("gormPlanRepository.Create: plan date is empty: %w", model.ErrInvalidInput)
	}
	if err := insertRecord(ctx, db, playerID, model.PlanRecordKey(plan.Date), plan); err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Daily plan already exists", "player_id", playerID.String(), "date", plan.Date)
			return model.ErrConflict
		}
		logger.Error("Error creating daily plan in DB", "error", err, "player_id", playerID.String(), "date", plan.Date)
		return fmt.Errorf("gormPlanRepository.Create: %w", err)
	}
	return nil
}

func (r *gormPlanRepository) Save(ctx context.Context, db *gorm.DB, playerID uuid.UUID, plan *model.DailyPlan) error {
	logger := middleware.GetLogger(ctx)

	if plan.Date == "" {
		return fmt.Errorf("gormPlanRepository.Save: plan date is empty: %w", model.ErrInvalidInput)
	}
	if err := upsertRecord(ctx, db, playerID, model.PlanRecordKey(plan.Date), plan); err != nil {
		logger.Error("Error saving daily plan in DB", "error", err, "player_id", playerID.String(), "date", plan.Date)
		return fmt.Errorf("gormPlanRepository.Save: %w", err)
	}
	return nil
}

// planRecordUpperBound は PlanRecordPrefix で始まるキーの直後の値。
// LIKE だと "_" が任意の1文字に一致するため範囲で絞り込む。
var planRecordUpperBound = model.PlanRecordPrefix[:len(model.PlanRecordPrefix)-1] + string(model.PlanRecordPrefix[len(model.PlanRecordPrefix)-1]+1)

// DeleteAll はプレイヤーの日付付きプランを全て削除し、削除件数を返します
func (r *gormPlanRepository) DeleteAll(ctx context.Context, db *gorm.DB, playerID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).
		Where("player_id = ? AND record_key >= ? AND record_key < ?", playerID, model.PlanRecordPrefix, planRecordUpperBound).
		Delete(&model.SnapshotRecord{})
	if result.Error != nil {
		logger.Error("Error deleting daily plans in DB", "error", result.Error, "player_id", playerID.String())
		return 0, fmt.Errorf("gormPlanRepository.DeleteAll: %w", result.Error)
	}
	return result.RowsAffected, nil
}
