//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository はプレイヤーごとのプロフィールスナップショット (キー titan_profile) を扱います
type ProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, playerID uuid.UUID, profile *model.Profile) error
	FindByPlayerID(ctx context.Context, db *gorm.DB, playerID uuid.UUID) (*model.Profile, error)
	Save(ctx context.Context, db *gorm.DB, playerID uuid.UUID, profile *model.Profile) error
	Delete(ctx context.Context, db *gorm.DB, playerID uuid.UUID) error
	ListPlayerIDs(ctx context.Context, db *gorm.DB) ([]uuid.UUID, error)
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) Create(ctx context.Context, db *gorm.DB, playerID uuid.UUID, profile *model.Profile) error {
	logger := middleware.GetLogger(ctx)

	err := insertRecord(ctx, db, playerID, model.ProfileRecordKey, profile)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Duplicate key error on create profile", "player_id", playerID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating profile in DB", "error", err, "player_id", playerID.String())
		return fmt.Errorf("gormProfileRepository.Create: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) FindByPlayerID(ctx context.Context, db *gorm.DB, playerID uuid.UUID) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)

	var profile model.Profile
	if err := findRecord(ctx, db, playerID, model.ProfileRecordKey, &profile); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Debug("Profile not found", "player_id", playerID.String())
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding profile in DB", "error", err, "player_id", playerID.String())
		return nil, fmt.Errorf("gormProfileRepository.FindByPlayerID: %w", err)
	}
	return &profile, nil
}

// Save はスナップショット全体で上書きします
func (r *gormProfileRepository) Save(ctx context.Context, db *gorm.DB, playerID uuid.UUID, profile *model.Profile) error {
	logger := middleware.GetLogger(ctx)

	if err := upsertRecord(ctx, db, playerID, model.ProfileRecordKey, profile); err != nil {
		logger.Error("Error saving profile in DB", "error", err, "player_id", playerID.String())
		return fmt.Errorf("gormProfileRepository.Save: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) Delete(ctx context.Context, db *gorm.DB, playerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).
		Where("player_id = ? AND record_key = ?", playerID, model.ProfileRecordKey).
		Delete(&model.SnapshotRecord{})
	if result.Error != nil {
		logger.Error("Error deleting profile in DB", "error", result.Error, "player_id", playerID.String())
		return fmt.Errorf("gormProfileRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Profile not found for deletion (idempotent)", "player_id", playerID.String())
	}
	return nil
}

// ListPlayerIDs はプロフィールを持つ全プレイヤーIDを返します
func (r *gormProfileRepository) ListPlayerIDs(ctx context.Context, db *gorm.DB) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)

	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Model(&model.SnapshotRecord{}).
		Where("record_key = ?", model.ProfileRecordKey).
		Order("player_id").
		Pluck("player_id", &ids).Error
	if err != nil {
		logger.Error("Error listing player ids in DB", "error", err)
		return nil, fmt.Errorf("gormProfileRepository.ListPlayerIDs: %w", err)
	}
	return ids, nil
}
