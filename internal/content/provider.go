//go:generate mockery --name Provider --output ./mocks --outpkg mocks --case=underscore

// Package content は生成AIからクエスト・アドバイス・ボス戦などの動的コンテンツを取得します。
// 失敗時の代替コンテンツは FallbackProvider に集約している。
package content

import (
	"context"
	"errors"

	"go_titan_quest/internal/model"
)

var (
	// ErrNotConfigured はAPIキーが未設定で生成AIを呼べないことを表す
	ErrNotConfigured = errors.New("content generator is not configured")
	// ErrEmptyResponse は生成AIが空の応答を返したことを表す
	ErrEmptyResponse = errors.New("content generator returned an empty response")
	// ErrMalformedResponse は応答が期待した形のJSONでないことを表す
	ErrMalformedResponse = errors.New("content generator returned a malformed response")
)

// ReviewStats は週次レビューの生成に渡す集計値
type ReviewStats struct {
	WeekStartDate   string
	TotalXP         int
	QuestsCompleted int
	WeightChange    float64
}

// Provider はプロフィールに合わせたコンテンツを返します。
// 実装はエラーを返してよく、呼び出し側は FallbackProvider で包んで使う。
type Provider interface {
	DailyPlan(ctx context.Context, profile model.Profile, date string) (*model.DailyPlan, error)
	HealthTip(ctx context.Context, profile model.Profile, date string) (*model.HealthTip, error)
	WeeklyReview(ctx context.Context, profile model.Profile, date string, stats ReviewStats) (*model.WeeklyReview, error)
	Challenge(ctx context.Context, profile model.Profile) (*model.Challenge, error)
	WeeklyCampaign(ctx context.Context, profile model.Profile, cfg model.CampaignConfig) (*model.WeeklyPlan, error)
	Oracle(ctx context.Context, profile model.Profile, query string) (string, error)
}
