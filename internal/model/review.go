// internal/model/review.go
package model

type TipCategory string

const (
	TipNutrition TipCategory = "NUTRITION"
	TipWorkout   TipCategory = "WORKOUT"
	TipMental    TipCategory = "MENTAL"
)

// HealthTip は1日1件のヘルスアドバイス
type HealthTip struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	Content  string      `json:"content"`
	Category TipCategory `json:"category"`
}

type ReviewRank string

const (
	RankS ReviewRank = "S"
	RankA ReviewRank = "A"
	RankB ReviewRank = "B"
	RankC ReviewRank = "C"
	RankD ReviewRank = "D"
)

// WeeklyReview は週次の振り返り
type WeeklyReview struct {
	ID              string     `json:"id"`
	Date            string     `json:"date"`
	WeekStartDate   string     `json:"week_start_date"`
	TotalXP         int        `json:"total_xp"`
	QuestsCompleted int        `json:"quests_completed"`
	WeightChange    float64    `json:"weight_change"`
	Rank            ReviewRank `json:"rank"`
	Evaluation      string     `json:"evaluation"`
}

// OracleRequest はオラクル (チャット) への質問
type OracleRequest struct {
	Query string `json:"query" validate:"required,min=1,max=1000"`
}

type OracleResponse struct {
	Reply string `json:"reply"`
}
