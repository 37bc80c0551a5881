//go:generate mockery --name CampaignService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_titan_quest/internal/content"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/progression"
	"go_titan_quest/internal/repository"
	"go_titan_quest/internal/webutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignService は週間キャンペーンの作成と種目の入れ替え・評価を扱います。
// キャンペーンはプロフィールの active_weekly_plan に保持する。
type CampaignService interface {
	CreateCampaign(ctx context.Context, playerID uuid.UUID, cfg *model.CampaignConfig) (*model.Profile, error)
	SwapExercise(ctx context.Context, playerID uuid.UUID, dayIndex, exerciseIndex int, req *model.SwapExerciseRequest) (*model.Profile, error)
	RateExercise(ctx context.Context, playerID uuid.UUID, dayIndex, exerciseIndex int, req *model.RateExerciseRequest) (*model.Profile, error)
}

type campaignService struct {
	store    *profileStore
	provider content.Provider
}

func NewCampaignService(db *gorm.DB, profileRepo repository.ProfileRepository, provider content.Provider, cache *SnapshotCache) CampaignService {
	return &campaignService{
		store:    newProfileStore(db, profileRepo, cache),
		provider: provider,
	}
}

// CreateCampaign は条件からキャンペーンを生成し、条件・プラン・目標体重をまとめて保存します
func (s *campaignService) CreateCampaign(ctx context.Context, playerID uuid.UUID, cfg *model.CampaignConfig) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)

	if err := webutil.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	profile, err := s.store.get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	plan, err := s.provider.WeeklyCampaign(ctx, *profile, *cfg)
	if err != nil {
		logger.Error("Failed to generate weekly campaign", "error", err)
		return nil, errContentUnavailable(err)
	}

	campaignCfg := *cfg
	updated, err := s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		p.CampaignConfig = &campaignCfg
		p.ActiveWeeklyPlan = plan
		p.TargetWeight = campaignCfg.TargetWeight
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Weekly campaign created", "days", len(plan.Schedule), "frequency", cfg.FrequencyPerWeek, "duration", cfg.DurationMinutes)
	return updated, nil
}

// activePlan はキャンペーン未作成なら NO_ACTIVE_CAMPAIGN を返します
func activePlan(p model.Profile) (model.WeeklyPlan, error) {
	if p.ActiveWeeklyPlan == nil {
		return model.WeeklyPlan{}, model.NewAppError("NO_ACTIVE_CAMPAIGN", "進行中のキャンペーンがありません。", "", model.ErrNotFound)
	}
	return *p.ActiveWeeklyPlan, nil
}

func (s *campaignService) SwapExercise(ctx context.Context, playerID uuid.UUID, dayIndex, exerciseIndex int, req *model.SwapExerciseRequest) (*model.Profile, error) {
	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		plan, err := activePlan(p)
		if err != nil {
			return p, err
		}
		next, err := progression.SwapExercise(plan, dayIndex, exerciseIndex, req.NewName)
		if err != nil {
			return p, errInvalid("INVALID_EXERCISE", err)
		}
		p.ActiveWeeklyPlan = &next
		return p, nil
	})
}

func (s *campaignService) RateExercise(ctx context.Context, playerID uuid.UUID, dayIndex, exerciseIndex int, req *model.RateExerciseRequest) (*model.Profile, error) {
	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		plan, err := activePlan(p)
		if err != nil {
			return p, err
		}
		next, err := progression.RateExercise(plan, dayIndex, exerciseIndex, req.Difficulty)
		if err != nil {
			return p, errInvalid("INVALID_EXERCISE", err)
		}
		p.ActiveWeeklyPlan = &next
		return p, nil
	})
}
