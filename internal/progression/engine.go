// Package progression はプロフィールのレベル・経験値の状態遷移を扱う純粋関数群です。
// I/O は一切行わず、入力スナップショットを変更せずに新しいスナップショットを返します。
package progression

import (
	"go_titan_quest/internal/model"
)

const (
	// 初期値 (オンボーディング時)
	InitialLevel     = 1
	InitialMaxXP     = 1000
	InitialStatMaxXP = 100

	// レベルアップ時の閾値成長率 (1.5倍、切り捨て)
	GrowthNumerator   = 3
	GrowthDenominator = 2

	// 敗北時の獲得XPは報酬の 1/5 (切り捨て)
	DefeatXPDivisor = 5
)

// Outcome はXP反映でレベルアップが起きたかどうか。両方 true になることもある (表示はグローバル優先)。
type Outcome struct {
	GlobalLeveledUp bool `json:"global_leveled_up"`
	StatLeveledUp   bool `json:"stat_leveled_up"`
}

// NextThreshold はレベルアップ後の必要経験値を返します
func NextThreshold(maxXP int) int {
	return maxXP * GrowthNumerator / GrowthDenominator
}

// advance は1トラック分の加算とレベルアップ判定。1回の呼び出しで上がるのは1レベルまで。
func advance(level, xp, maxXP, delta int) (int, int, int, bool) {
	xp += delta
	if xp >= maxXP {
		return level + 1, xp - maxXP, NextThreshold(maxXP), true
	}
	return level, xp, maxXP, false
}

// ApplyXP はグローバルトラックと指定ステータスのトラックに経験値を加算します。
// プロフィールにそのステータスが無い場合 (旧データなど) と delta が負の場合は何もしません。
func ApplyXP(p model.Profile, stat model.StatType, delta int) (model.Profile, Outcome) {
	if delta < 0 {
		return p, Outcome{}
	}
	current, ok := p.Stats[stat]
	if !ok {
		return p, Outcome{}
	}

	var out Outcome
	next := p
	next.Level, next.CurrentXP, next.MaxXP, out.GlobalLeveledUp = advance(p.Level, p.CurrentXP, p.MaxXP, delta)

	var updated model.StatDetail
	updated.Level, updated.XP, updated.MaxXP, out.StatLeveledUp = advance(current.Level, current.XP, current.MaxXP, delta)

	stats := make(map[model.StatType]model.StatDetail, len(p.Stats))
	for k, v := range p.Stats {
		stats[k] = v
	}
	stats[stat] = updated
	next.Stats = stats

	return next, out
}

// CompleteQuest はクエストを完了済みにしてXPを反映します。
// クエストが存在しない、または完了済みの場合は何もせず completed=false を返します (冪等)。
// 元の plan / profile は変更しません。
func CompleteQuest(p model.Profile, plan model.DailyPlan, questID string) (model.Profile, model.DailyPlan, Outcome, bool) {
	idx := plan.FindQuest(questID)
	if idx < 0 || plan.Quests[idx].IsCompleted {
		return p, plan, Outcome{}, false
	}

	quests := make([]model.Quest, len(plan.Quests))
	copy(quests, plan.Quests)
	quests[idx].IsCompleted = true

	nextPlan := plan
	nextPlan.Quests = quests

	quest := quests[idx]
	nextProfile, out := ApplyXP(p, quest.StatBonus, quest.XPReward)
	return nextProfile, nextPlan, out, true
}

// ChallengeXP はボス戦の結果から獲得XPを計算します
func ChallengeXP(xpReward int, outcome model.ChallengeOutcome) int {
	if xpReward <= 0 {
		return 0
	}
	if outcome == model.OutcomeVictory {
		return xpReward
	}
	return xpReward / DefeatXPDivisor
}

// ResolveChallenge はボス戦の結果をグローバルトラックにだけ反映し、履歴に追記します。
// 履歴はここでは削らない。
func ResolveChallenge(p model.Profile, result model.ChallengeResult) (model.Profile, Outcome) {
	delta := result.XPGained
	if delta < 0 {
		delta = 0
	}

	var out Outcome
	next := p
	next.Level, next.CurrentXP, next.MaxXP, out.GlobalLeveledUp = advance(p.Level, p.CurrentXP, p.MaxXP, delta)

	history := make([]model.ChallengeResult, 0, len(p.ChallengeHistory)+1)
	history = append(history, p.ChallengeHistory...)
	next.ChallengeHistory = append(history, result)

	return next, out
}
