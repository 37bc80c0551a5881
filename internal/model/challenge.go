// internal/model/challenge.go
package model

type ChallengeDifficulty string

const (
	ChallengeNormal ChallengeDifficulty = "NORMAL"
	ChallengeHard   ChallengeDifficulty = "HARD"
	ChallengeInsane ChallengeDifficulty = "INSANE"
)

type ChallengeType string

const (
	ChallengeRepMax    ChallengeType = "REP_MAX"
	ChallengeTimeMax   ChallengeType = "TIME_MAX"
	ChallengeTimeTrial ChallengeType = "TIME_TRIAL"
)

type ChallengeOutcome string

const (
	OutcomeVictory ChallengeOutcome = "VICTORY"
	OutcomeDefeat  ChallengeOutcome = "DEFEAT"
)

// Challenge はAIが生成するボス戦。結果が確定するまで保存しない。
type Challenge struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Lore         string              `json:"lore"`
	Description  string              `json:"description"`
	Requirements string              `json:"requirements"`
	Difficulty   ChallengeDifficulty `json:"difficulty"`
	XPReward     int                 `json:"xp_reward"`
	Type         ChallengeType       `json:"type"`
}

// ChallengeResult はボス戦の結果。履歴には追記のみ。
type ChallengeResult struct {
	Date           string           `json:"date"`
	ChallengeTitle string           `json:"challenge_title"`
	Result         ChallengeOutcome `json:"result"`
	Record         string           `json:"record"`
	XPGained       int              `json:"xp_gained"`
}

// ResolveChallengeRequest はボス戦の結果送信リクエスト
type ResolveChallengeRequest struct {
	ChallengeTitle string           `json:"challenge_title" validate:"required,max=200"`
	XPReward       int              `json:"xp_reward" validate:"required,gt=0,lte=100000"`
	Result         ChallengeOutcome `json:"result" validate:"required,oneof=VICTORY DEFEAT"`
	Record         string           `json:"record" validate:"required,max=200"`
}

// ResolveChallengeResponse はボス戦結果反映後のレスポンス
type ResolveChallengeResponse struct {
	Profile         *Profile         `json:"profile"`
	Result          *ChallengeResult `json:"result"`
	GlobalLeveledUp bool             `json:"global_leveled_up"`
}
