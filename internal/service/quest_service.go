//go:generate mockery --name QuestService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_titan_quest/internal/content"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/progression"
	"go_titan_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestService interface {
	GetTodayPlan(ctx context.Context, playerID uuid.UUID) (*model.DailyPlan, error)
	CompleteQuest(ctx context.Context, playerID uuid.UUID, date, questID string) (*model.CompleteQuestResponse, error)
}

type questService struct {
	db       *gorm.DB
	store    *profileStore
	planRepo repository.PlanRepository
	provider content.Provider
	clock    Clock
}

func NewQuestService(db *gorm.DB, profileRepo repository.ProfileRepository, planRepo repository.PlanRepository, provider content.Provider, cache *SnapshotCache, clock Clock) QuestService {
	return &questService{
		db:       db,
		store:    newProfileStore(db, profileRepo, cache),
		planRepo: planRepo,
		provider: provider,
		clock:    clock,
	}
}

// GetTodayPlan は今日のプランを返します。まだ無ければ生成して保存する。
func (s *questService) GetTodayPlan(ctx context.Context, playerID uuid.UUID) (*model.DailyPlan, error) {
	logger := middleware.GetLogger(ctx)
	date := today(s.clock)

	plan, err := s.planRepo.FindByDate(ctx, s.db, playerID, date)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load daily plan", "error", err, "date", date)
		return nil, errInternal(err)
	}

	profile, err := s.store.get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	// 生成AIの呼び出しはロックの外で行う
	generated, err := s.provider.DailyPlan(ctx, *profile, date)
	if err != nil {
		logger.Error("Failed to generate daily plan", "error", err, "date", date)
		return nil, errContentUnavailable(err)
	}
	generated.Date = date

	unlock := s.store.cache.Lock(playerID)
	defer unlock()

	// 生成中にリセットされたプレイヤーのプランは保存しない
	if _, err := s.store.load(ctx, s.db.WithContext(ctx), playerID); err != nil {
		return nil, err
	}

	// プランは1日1回だけ作る。先に保存されていればそちらを返す。
	if err := s.planRepo.Create(ctx, s.db, playerID, generated); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			logger.Error("Failed to save daily plan", "error", err, "date", date)
			return nil, errInternal(err)
		}
		stored, err := s.planRepo.FindByDate(ctx, s.db, playerID, date)
		if err != nil {
			logger.Error("Failed to load daily plan", "error", err, "date", date)
			return nil, errInternal(err)
		}
		logger.Info("Daily plan already generated, discarding new one", "date", date)
		return stored, nil
	}

	logger.Info("Daily plan generated", "date", date, "quests", len(generated.Quests))
	return generated, nil
}

// CompleteQuest はクエストを完了し、プランとプロフィールを同じトランザクションで保存します。
// 完了済みのクエストに対しては何も変更せず現在の状態を返す。
func (s *questService) CompleteQuest(ctx context.Context, playerID uuid.UUID, date, questID string) (*model.CompleteQuestResponse, error) {
	logger := middleware.GetLogger(ctx).With("date", date, "quest_id", questID)

	if _, err := time.Parse(model.RecordDateLayout, date); err != nil {
		return nil, model.NewAppError("INVALID_DATE", "日付は YYYY-MM-DD 形式で指定してください。", "date", model.ErrInvalidInput)
	}
	if questID == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "クエストIDを指定してください。", "quest_id", model.ErrInvalidInput)
	}

	var resp model.CompleteQuestResponse
	unlock := s.store.cache.Lock(playerID)
	defer unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := s.store.load(ctx, tx, playerID)
		if err != nil {
			return err
		}

		plan, err := s.planRepo.FindByDate(ctx, tx, playerID, date)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Daily plan not found")
				return model.NewAppError("PLAN_NOT_FOUND", "指定された日付のプランが見つかりません。", "date", model.ErrNotFound)
			}
			logger.Error("Failed to load daily plan", "error", err)
			return errInternal(err)
		}
		if plan.FindQuest(questID) < 0 {
			logger.Warn("Quest not found in plan")
			return model.NewAppError("QUEST_NOT_FOUND", "クエストが見つかりません。", "quest_id", model.ErrNotFound)
		}

		nextProfile, nextPlan, outcome, completed := progression.CompleteQuest(*profile, *plan, questID)
		resp = model.CompleteQuestResponse{
			Profile:         &nextProfile,
			Plan:            &nextPlan,
			GlobalLeveledUp: outcome.GlobalLeveledUp,
			StatLeveledUp:   outcome.StatLeveledUp,
		}
		if !completed {
			logger.Info("Quest already completed")
			return nil
		}

		if err := s.planRepo.Save(ctx, tx, playerID, &nextPlan); err != nil {
			logger.Error("Failed to save daily plan", "error", err)
			return errInternal(err)
		}
		if err := s.store.repo.Save(ctx, tx, playerID, &nextProfile); err != nil {
			logger.Error("Failed to save profile", "error", err)
			return errInternal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.cache.Put(playerID, *resp.Profile)
	logger.Info("Quest completed",
		"level", resp.Profile.Level,
		"global_leveled_up", resp.GlobalLeveledUp,
		"stat_leveled_up", resp.StatLeveledUp,
	)
	return &resp, nil
}
