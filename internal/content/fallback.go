package content

import (
	"context"

	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"

	"github.com/google/uuid"
)

// 生成AIが使えないときの代替コンテンツ。ここ以外では代替値を作らない。
const (
	FallbackQuestID       = "fallback-1"
	FallbackQuestXP       = 10
	FallbackCalories      = 2000
	FallbackProtein       = 100
	FallbackTipContent    = "Drink some water, warrior."
	FallbackChallengeXP   = 500
	FallbackChallengeName = "Phantom of Sloth"
	FallbackOracleReply   = "The Oracle is busy."
)

func fallbackDailyPlan(date string) *model.DailyPlan {
	return &model.DailyPlan{
		Date:           date,
		CaloriesTarget: FallbackCalories,
		ProteinTarget:  FallbackProtein,
		WorkoutFocus:   "Basic recovery",
		Quests: []model.Quest{
			{
				ID:               FallbackQuestID,
				Title:            "Recovery meditation",
				Description:      "The AI system is under maintenance. Rest and recover your energy.",
				XPReward:         FallbackQuestXP,
				Type:             model.QuestLifestyle,
				IsCompleted:      false,
				StatBonus:        model.StatVIT,
				RelatedExercises: []model.ExerciseDetail{},
			},
		},
	}
}

func fallbackHealthTip(date string) *model.HealthTip {
	return &model.HealthTip{
		ID:       uuid.NewString(),
		Date:     date,
		Content:  FallbackTipContent,
		Category: model.TipNutrition,
	}
}

func fallbackChallenge() *model.Challenge {
	return &model.Challenge{
		ID:           uuid.NewString(),
		Title:        FallbackChallengeName,
		Lore:         "A dark force is trying to keep you in bed.",
		Description:  "Burpees for 5 minutes.",
		Requirements: "Over 30 reps",
		Difficulty:   model.ChallengeHard,
		XPReward:     FallbackChallengeXP,
		Type:         model.ChallengeRepMax,
	}
}

func fallbackWeeklyCampaign() *model.WeeklyPlan {
	return &model.WeeklyPlan{
		Schedule:  []model.DailySchedule{},
		Nutrition: model.NutritionPlan{Meals: []string{}, Tips: []string{}},
	}
}

// FallbackProvider は内側の Provider が失敗したら警告ログを出して代替コンテンツを返します。
// そのため呼び出し側にエラーが返ることはない。
type FallbackProvider struct {
	inner Provider
}

func NewFallbackProvider(inner Provider) *FallbackProvider {
	return &FallbackProvider{inner: inner}
}

var _ Provider = (*FallbackProvider)(nil)

func (f *FallbackProvider) warn(ctx context.Context, kind string, err error) {
	middleware.GetLogger(ctx).Warn("Content generation failed, serving fallback", "content", kind, "error", err)
}

func (f *FallbackProvider) DailyPlan(ctx context.Context, profile model.Profile, date string) (*model.DailyPlan, error) {
	plan, err := f.inner.DailyPlan(ctx, profile, date)
	if err != nil || plan == nil {
		f.warn(ctx, "daily_plan", err)
		return fallbackDailyPlan(date), nil
	}
	return plan, nil
}

func (f *FallbackProvider) HealthTip(ctx context.Context, profile model.Profile, date string) (*model.HealthTip, error) {
	tip, err := f.inner.HealthTip(ctx, profile, date)
	if err != nil || tip == nil {
		f.warn(ctx, "health_tip", err)
		return fallbackHealthTip(date), nil
	}
	return tip, nil
}

func (f *FallbackProvider) WeeklyReview(ctx context.Context, profile model.Profile, date string, stats ReviewStats) (*model.WeeklyReview, error) {
	review, err := f.inner.WeeklyReview(ctx, profile, date, stats)
	if err != nil || review == nil {
		f.warn(ctx, "weekly_review", err)
		return newWeeklyReview(date, stats, defaultReviewRank, defaultEvaluation), nil
	}
	return review, nil
}

func (f *FallbackProvider) Challenge(ctx context.Context, profile model.Profile) (*model.Challenge, error) {
	c, err := f.inner.Challenge(ctx, profile)
	if err != nil || c == nil {
		f.warn(ctx, "challenge", err)
		return fallbackChallenge(), nil
	}
	return c, nil
}

func (f *FallbackProvider) WeeklyCampaign(ctx context.Context, profile model.Profile, cfg model.CampaignConfig) (*model.WeeklyPlan, error) {
	plan, err := f.inner.WeeklyCampaign(ctx, profile, cfg)
	if err != nil || plan == nil {
		f.warn(ctx, "weekly_campaign", err)
		return fallbackWeeklyCampaign(), nil
	}
	return plan, nil
}

func (f *FallbackProvider) Oracle(ctx context.Context, profile model.Profile, query string) (string, error) {
	reply, err := f.inner.Oracle(ctx, profile, query)
	if err != nil {
		f.warn(ctx, "oracle", err)
		return FallbackOracleReply, nil
	}
	return reply, nil
}
