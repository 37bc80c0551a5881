// internal/model/profile.go
package model

// Faction はプレイヤーが選ぶトレーニング方針 (AIコンテンツの方向付けにのみ使う)
type Faction string

const (
	FactionIronClan     Faction = "IRON_CLAN"     // 筋肥大・筋力
	FactionShadowRunner Faction = "SHADOW_RUNNER" // 減量・有酸素
	FactionTitanTribe   Faction = "TITAN_TRIBE"   // 増量
	FactionBalanceOrder Faction = "BALANCE_ORDER" // 健康維持
)

// UserClass は年齢から決まるクラス
type UserClass string

const (
	ClassYoungAdventurer UserClass = "YOUNG_ADVENTURER" // 13-17
	ClassRookieWarrior   UserClass = "ROOKIE_WARRIOR"   // 18-24
	ClassEliteKnight     UserClass = "ELITE_KNIGHT"     // 25-35
	ClassGuardian        UserClass = "GUARDIAN"         // 36-50
	ClassElderSage       UserClass = "ELDER_SAGE"       // 51-
)

type TrainingStyle string

const (
	StyleCalisthenics TrainingStyle = "CALISTHENICS"
	StyleGym          TrainingStyle = "GYM"
)

// StatType は5種類のサブ成長トラック
type StatType string

const (
	StatSTR StatType = "STR" // 筋力
	StatAGI StatType = "AGI" // 有酸素・柔軟性
	StatVIT StatType = "VIT" // 睡眠・栄養・回復
	StatINT StatType = "INT" // 知識
	StatCHA StatType = "CHA" // 規律・継続
)

// AllStats は全ステータスを定義順で返します
func AllStats() []StatType {
	return []StatType{StatSTR, StatAGI, StatVIT, StatINT, StatCHA}
}

// Valid は定義済みのステータスかどうかを返します
func (s StatType) Valid() bool {
	switch s {
	case StatSTR, StatAGI, StatVIT, StatINT, StatCHA:
		return true
	}
	return false
}

// StatDetail は各ステータスのレベルと経験値
type StatDetail struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
	MaxXP int `json:"max_xp"`
}

// WeightEntry は体重履歴の1件
type WeightEntry struct {
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Calories int     `json:"calories"`
}

type UserSettings struct {
	SoundEnabled        bool    `json:"sound_enabled"`
	Volume              float64 `json:"volume"`
	NotificationEnabled bool    `json:"notification_enabled"`
}

// Profile はプレイヤーの全状態を表すスナップショット。
// 更新は progression パッケージの純粋関数で新しいスナップショットを作り、丸ごと保存する。
type Profile struct {
	Name         string  `json:"name"`
	Email        string  `json:"email,omitempty"`
	Age          int     `json:"age"`
	Height       float64 `json:"height"`        // cm
	Weight       float64 `json:"weight"`        // kg
	TargetWeight float64 `json:"target_weight"` // kg

	Faction       Faction       `json:"faction"`
	UserClass     UserClass     `json:"user_class"`
	TrainingStyle TrainingStyle `json:"training_style"`

	Level     int `json:"level"`
	CurrentXP int `json:"current_xp"`
	MaxXP     int `json:"max_xp"`
	Streak    int `json:"streak"`

	Stats map[StatType]StatDetail `json:"stats"`

	History          []WeightEntry     `json:"history"`
	TipsHistory      []HealthTip       `json:"tips_history"`
	WeeklyReviews    []WeeklyReview    `json:"weekly_reviews"`
	ChallengeHistory []ChallengeResult `json:"challenge_history"`
	Settings         UserSettings      `json:"settings"`

	CampaignConfig   *CampaignConfig `json:"campaign_config,omitempty"`
	ActiveWeeklyPlan *WeeklyPlan     `json:"active_weekly_plan,omitempty"`
}

type ContextKey string

const (
	PlayerIDKey ContextKey = "playerID"
)

// --- リクエスト / レスポンス DTO ---

// OnboardingRequest はオンボーディング (キャラクター作成) のリクエストボディ
type OnboardingRequest struct {
	Name          string        `json:"name" validate:"required,min=1,max=100"`
	Email         string        `json:"email" validate:"omitempty,email"`
	Age           int           `json:"age" validate:"required,min=1,max=120"`
	Height        float64       `json:"height" validate:"required,gt=0,lte=300"`
	Weight        float64       `json:"weight" validate:"required,gt=0,lte=500"`
	TargetWeight  float64       `json:"target_weight" validate:"required,gt=0,lte=500"`
	Faction       Faction       `json:"faction" validate:"required,oneof=IRON_CLAN SHADOW_RUNNER TITAN_TRIBE BALANCE_ORDER"`
	TrainingStyle TrainingStyle `json:"training_style" validate:"required,oneof=CALISTHENICS GYM"`
}

// OnboardingResponse はオンボーディング成功時のレスポンス
type OnboardingResponse struct {
	PlayerID    string   `json:"player_id"`
	AccessToken string   `json:"access_token"`
	Profile     *Profile `json:"profile"`
}

// ClassPreviewResponse は年齢から判定したクラスのプレビュー
type ClassPreviewResponse struct {
	Age       int       `json:"age"`
	UserClass UserClass `json:"user_class"`
	Banded    bool      `json:"banded"` // false の場合は年齢帯に該当せずデフォルトクラス
}

type UpdateSettingsRequest struct {
	SoundEnabled        *bool    `json:"sound_enabled" validate:"required"`
	Volume              *float64 `json:"volume" validate:"required,gte=0,lte=1"`
	NotificationEnabled *bool    `json:"notification_enabled" validate:"required"`
}

type UpdateTrainingStyleRequest struct {
	TrainingStyle TrainingStyle `json:"training_style" validate:"required,oneof=CALISTHENICS GYM"`
}

type UpdateFactionRequest struct {
	Faction Faction `json:"faction" validate:"required,oneof=IRON_CLAN SHADOW_RUNNER TITAN_TRIBE BALANCE_ORDER"`
}

type LogWeightRequest struct {
	Weight   float64 `json:"weight" validate:"required,gt=0,lte=500"`
	Calories int     `json:"calories" validate:"gte=0"`
}
