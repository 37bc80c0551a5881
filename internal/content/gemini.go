package content

import (
	"context"
	"fmt"
	"strings"

	"go_titan_quest/internal/model"

	"github.com/google/uuid"
)

// GeminiProvider はプロンプトとスキーマを組み立てて Generator を呼び、応答をモデルに変換します
type GeminiProvider struct {
	gen      Generator
	language string
}

// NewGeminiProvider は GeminiProvider を作成します。language は出力言語 (例: "Japanese")。
func NewGeminiProvider(gen Generator, language string) *GeminiProvider {
	if language == "" {
		language = "English"
	}
	return &GeminiProvider{gen: gen, language: language}
}

var _ Provider = (*GeminiProvider)(nil)

func (p *GeminiProvider) DailyPlan(ctx context.Context, profile model.Profile, date string) (*model.DailyPlan, error) {
	raw, err := p.gen.Generate(ctx, GenerateRequest{
		Prompt: dailyPlanPrompt(profile, p.language),
		Schema: dailyPlanSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("daily plan: %w", err)
	}
	plan, err := parseDailyPlan(raw, date)
	if err != nil {
		return nil, fmt.Errorf("daily plan: %w", err)
	}
	return plan, nil
}

func (p *GeminiProvider) HealthTip(ctx context.Context, profile model.Profile, date string) (*model.HealthTip, error) {
	raw, err := p.gen.Generate(ctx, GenerateRequest{
		Prompt: healthTipPrompt(profile, p.language),
		Schema: healthTipSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("health tip: %w", err)
	}
	content, category, err := parseHealthTip(raw)
	if err != nil {
		return nil, fmt.Errorf("health tip: %w", err)
	}
	return &model.HealthTip{
		ID:       uuid.NewString(),
		Date:     date,
		Content:  content,
		Category: category,
	}, nil
}

func (p *GeminiProvider) WeeklyReview(ctx context.Context, profile model.Profile, date string, stats ReviewStats) (*model.WeeklyReview, error) {
	raw, err := p.gen.Generate(ctx, GenerateRequest{
		Prompt: weeklyReviewPrompt(profile, stats, p.language),
		Schema: weeklyReviewSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("weekly review: %w", err)
	}
	rank, evaluation, err := parseWeeklyReview(raw)
	if err != nil {
		return nil, fmt.Errorf("weekly review: %w", err)
	}
	return newWeeklyReview(date, stats, rank, evaluation), nil
}

func (p *GeminiProvider) Challenge(ctx context.Context, profile model.Profile) (*model.Challenge, error) {
	raw, err := p.gen.Generate(ctx, GenerateRequest{
		Prompt: challengePrompt(profile, p.language),
		Schema: challengeSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("challenge: %w", err)
	}
	c, err := parseChallenge(raw)
	if err != nil {
		return nil, fmt.Errorf("challenge: %w", err)
	}
	c.ID = uuid.NewString()
	return c, nil
}

func (p *GeminiProvider) WeeklyCampaign(ctx context.Context, profile model.Profile, cfg model.CampaignConfig) (*model.WeeklyPlan, error) {
	raw, err := p.gen.Generate(ctx, GenerateRequest{
		Prompt: weeklyCampaignPrompt(profile, cfg, p.language),
		Schema: weeklyCampaignSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("weekly campaign: %w", err)
	}
	plan, err := parseWeeklyCampaign(raw)
	if err != nil {
		return nil, fmt.Errorf("weekly campaign: %w", err)
	}
	return plan, nil
}

// Oracle は会話履歴を持たない1問1答
func (p *GeminiProvider) Oracle(ctx context.Context, profile model.Profile, query string) (string, error) {
	raw, err := p.gen.Generate(ctx, GenerateRequest{
		Prompt:            query,
		SystemInstruction: oracleInstruction(profile, p.language),
	})
	if err != nil {
		return "", fmt.Errorf("oracle: %w", err)
	}
	reply := strings.TrimSpace(raw)
	if reply == "" {
		reply = "..."
	}
	return reply, nil
}

func newWeeklyReview(date string, stats ReviewStats, rank model.ReviewRank, evaluation string) *model.WeeklyReview {
	return &model.WeeklyReview{
		ID:              uuid.NewString(),
		Date:            date,
		WeekStartDate:   stats.WeekStartDate,
		TotalXP:         stats.TotalXP,
		QuestsCompleted: stats.QuestsCompleted,
		WeightChange:    stats.WeightChange,
		Rank:            rank,
		Evaluation:      evaluation,
	}
}
