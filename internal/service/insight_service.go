//go:generate mockery --name InsightService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"strings"

	"go_titan_quest/internal/content"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/progression"
	"go_titan_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reviewWindowDays は週次レビューで集計する日数 (今日を含む)
const reviewWindowDays = 7

// InsightService はヘルスアドバイス・週次レビュー・オラクルを扱います
type InsightService interface {
	EnsureDailyTip(ctx context.Context, playerID uuid.UUID) (*model.HealthTip, error)
	ListTips(ctx context.Context, playerID uuid.UUID) ([]model.HealthTip, error)
	GenerateWeeklyReview(ctx context.Context, playerID uuid.UUID) (*model.WeeklyReview, error)
	ConsultOracle(ctx context.Context, playerID uuid.UUID, query string) (string, error)
}

type insightService struct {
	db       *gorm.DB
	store    *profileStore
	planRepo repository.PlanRepository
	provider content.Provider
	mailer   Mailer
	clock    Clock
}

func NewInsightService(db *gorm.DB, profileRepo repository.ProfileRepository, planRepo repository.PlanRepository, provider content.Provider, mailer Mailer, cache *SnapshotCache, clock Clock) InsightService {
	return &insightService{
		db:       db,
		store:    newProfileStore(db, profileRepo, cache),
		planRepo: planRepo,
		provider: provider,
		mailer:   mailer,
		clock:    clock,
	}
}

func tipForDate(p model.Profile, date string) *model.HealthTip {
	for i := range p.TipsHistory {
		if p.TipsHistory[i].Date == date {
			tip := p.TipsHistory[i]
			return &tip
		}
	}
	return nil
}

// EnsureDailyTip は今日のアドバイスを返します。まだ無ければ生成して履歴の先頭に追加する。
func (s *insightService) EnsureDailyTip(ctx context.Context, playerID uuid.UUID) (*model.HealthTip, error) {
	logger := middleware.GetLogger(ctx)
	date := today(s.clock)

	profile, err := s.store.get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if tip := tipForDate(*profile, date); tip != nil {
		return tip, nil
	}

	generated, err := s.provider.HealthTip(ctx, *profile, date)
	if err != nil {
		logger.Error("Failed to generate health tip", "error", err)
		return nil, errContentUnavailable(err)
	}
	generated.Date = date

	var stored *model.HealthTip
	_, err = s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		// 生成中に別リクエストが追加していた場合はそちらを使う
		if existing := tipForDate(p, date); existing != nil {
			stored = existing
			return p, nil
		}
		stored = generated
		return progression.PrependTip(p, *generated), nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Daily tip stored", "date", date, "category", stored.Category)
	return stored, nil
}

// ListTips はアドバイス履歴を新しい順で返します
func (s *insightService) ListTips(ctx context.Context, playerID uuid.UUID) ([]model.HealthTip, error) {
	profile, err := s.store.get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if profile.TipsHistory == nil {
		return []model.HealthTip{}, nil
	}
	return profile.TipsHistory, nil
}

// reviewStats は直近7日分のプランと体重履歴から週次の集計値を作ります
func (s *insightService) reviewStats(ctx context.Context, playerID uuid.UUID, profile model.Profile, date string) (content.ReviewStats, error) {
	weekStart, err := daysBefore(date, reviewWindowDays-1)
	if err != nil {
		return content.ReviewStats{}, err
	}

	plans, err := s.planRepo.FindBetween(ctx, s.db, playerID, weekStart, date)
	if err != nil {
		return content.ReviewStats{}, err
	}

	completed := 0
	for _, plan := range plans {
		for _, q := range plan.Quests {
			if q.IsCompleted {
				completed++
			}
		}
	}

	return content.ReviewStats{
		WeekStartDate:   weekStart,
		TotalXP:         profile.CurrentXP,
		QuestsCompleted: completed,
		WeightChange:    progression.WeightChangeSince(profile, weekStart),
	}, nil
}

// GenerateWeeklyReview は週次レビューを生成して履歴に追加し、通知が有効ならメールで送ります
func (s *insightService) GenerateWeeklyReview(ctx context.Context, playerID uuid.UUID) (*model.WeeklyReview, error) {
	logger := middleware.GetLogger(ctx)
	date := today(s.clock)

	profile, err := s.store.get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	stats, err := s.reviewStats(ctx, playerID, *profile, date)
	if err != nil {
		logger.Error("Failed to aggregate weekly stats", "error", err)
		return nil, errInternal(err)
	}

	review, err := s.provider.WeeklyReview(ctx, *profile, date, stats)
	if err != nil {
		logger.Error("Failed to generate weekly review", "error", err)
		return nil, errContentUnavailable(err)
	}

	updated, err := s.store.update(ctx, playerID, func(p model.Profile) (model.Profile, error) {
		return progression.AppendReview(p, *review), nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Weekly review stored", "rank", review.Rank, "quests_completed", review.QuestsCompleted)
	s.notifyReview(ctx, *updated, *review)
	return review, nil
}

// notifyReview はメール送信に失敗してもレビュー自体は成功扱いにする
func (s *insightService) notifyReview(ctx context.Context, p model.Profile, review model.WeeklyReview) {
	if !p.Settings.NotificationEnabled || p.Email == "" || s.mailer == nil {
		return
	}
	subject := fmt.Sprintf("【Titan Quest】週次レビュー: ランク %s", review.Rank)
	body := fmt.Sprintf("%s さん、今週の戦績です。\n\n期間: %s 〜 %s\n完了クエスト: %d\n体重変化: %+.1f kg\nランク: %s\n\n%s",
		p.Name, review.WeekStartDate, review.Date, review.QuestsCompleted, review.WeightChange, review.Rank, review.Evaluation)

	if err := s.mailer.Send(ctx, p.Email, subject, body); err != nil {
		middleware.GetLogger(ctx).Warn("Failed to send weekly review email", "error", err)
	}
}

// ConsultOracle はプロフィールを文脈にしてオラクルに質問します。会話履歴は持たない。
func (s *insightService) ConsultOracle(ctx context.Context, playerID uuid.UUID, query string) (string, error) {
	logger := middleware.GetLogger(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return "", model.NewAppError("VALIDATION_ERROR", "質問を入力してください。", "query", model.ErrInvalidInput)
	}

	profile, err := s.store.get(ctx, playerID)
	if err != nil {
		return "", err
	}

	reply, err := s.provider.Oracle(ctx, *profile, query)
	if err != nil {
		logger.Error("Failed to consult oracle", "error", err)
		return "", errContentUnavailable(err)
	}
	return reply, nil
}
