package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers はルーティングに登録するハンドラ一式
type Handlers struct {
	Health    *HealthHandler
	Profile   *ProfileHandler
	Quest     *QuestHandler
	Challenge *ChallengeHandler
	Insight   *InsightHandler
	Campaign  *CampaignHandler
}

// RegisterRoutes は /health と /api/v1 配下のルートを登録します。
// auth はプレイヤーIDをコンテキストに設定するミドルウェア (JWT または開発用ヘッダー)。
func RegisterRoutes(r chi.Router, h Handlers, auth func(http.Handler) http.Handler) {
	if h.Health != nil {
		r.Get("/health", h.Health.Health)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// 認証不要
		r.Post("/players", h.Profile.Onboard)
		r.Get("/classes", h.Profile.PreviewClass)

		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.Profile.GetProfile)
				r.Delete("/", h.Profile.ResetJourney)
				r.Put("/settings", h.Profile.UpdateSettings)
				r.Put("/training-style", h.Profile.UpdateTrainingStyle)
				r.Put("/faction", h.Profile.UpdateFaction)
				r.Post("/weights", h.Profile.LogWeight)
			})

			r.Get("/plans/today", h.Quest.GetTodayPlan)
			r.Post("/plans/{date}/quests/{quest_id}/complete", h.Quest.CompleteQuest)

			r.Post("/challenges", h.Challenge.Summon)
			r.Post("/challenges/result", h.Challenge.Resolve)

			r.Get("/tips", h.Insight.ListTips)
			r.Post("/tips/daily", h.Insight.EnsureDailyTip)
			r.Post("/reviews/weekly", h.Insight.GenerateWeeklyReview)
			r.Post("/oracle", h.Insight.ConsultOracle)

			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", h.Campaign.CreateCampaign)
				r.Put("/days/{day}/exercises/{exercise}/swap", h.Campaign.SwapExercise)
				r.Put("/days/{day}/exercises/{exercise}/rating", h.Campaign.RateExercise)
			})
		})
	})
}
