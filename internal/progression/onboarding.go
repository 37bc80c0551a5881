package progression

import (
	"strings"

	"go_titan_quest/internal/model"
)

// DefaultClass は年齢帯に当てはまらない場合に使う初期クラス
const DefaultClass = model.ClassRookieWarrior

// DeriveClass は年齢からクラスを判定します。13歳未満は該当する帯が無いため ok=false。
func DeriveClass(age int) (model.UserClass, bool) {
	switch {
	case age >= 13 && age <= 17:
		return model.ClassYoungAdventurer, true
	case age >= 18 && age <= 24:
		return model.ClassRookieWarrior, true
	case age >= 25 && age <= 35:
		return model.ClassEliteKnight, true
	case age >= 36 && age <= 50:
		return model.ClassGuardian, true
	case age > 50:
		return model.ClassElderSage, true
	}
	return "", false
}

// NewProfile はオンボーディング入力から初期プロフィールを作ります
func NewProfile(req model.OnboardingRequest, today string) model.Profile {
	class, ok := DeriveClass(req.Age)
	if !ok {
		class = DefaultClass
	}

	stats := make(map[model.StatType]model.StatDetail, len(model.AllStats()))
	for _, s := range model.AllStats() {
		stats[s] = model.StatDetail{Level: 1, XP: 0, MaxXP: InitialStatMaxXP}
	}

	return model.Profile{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Age:           req.Age,
		Height:        req.Height,
		Weight:        req.Weight,
		TargetWeight:  req.TargetWeight,
		Faction:       req.Faction,
		UserClass:     class,
		TrainingStyle: req.TrainingStyle,
		Level:         InitialLevel,
		CurrentXP:     0,
		MaxXP:         InitialMaxXP,
		Streak:        0,
		Stats:         stats,
		History: []model.WeightEntry{
			{Date: today, Weight: req.Weight, Calories: 0},
		},
		TipsHistory:      []model.HealthTip{},
		WeeklyReviews:    []model.WeeklyReview{},
		ChallengeHistory: []model.ChallengeResult{},
		Settings: model.UserSettings{
			SoundEnabled:        true,
			Volume:              0.5,
			NotificationEnabled: false,
		},
	}
}
