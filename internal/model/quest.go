// internal/model/quest.go
package model

type QuestType string

const (
	QuestWorkout   QuestType = "WORKOUT"
	QuestNutrition QuestType = "NUTRITION"
	QuestLifestyle QuestType = "LIFESTYLE"
)

type ExerciseDifficulty string

const (
	DifficultyEasy   ExerciseDifficulty = "EASY"
	DifficultyNormal ExerciseDifficulty = "NORMAL"
	DifficultyHard   ExerciseDifficulty = "HARD"
)

// ExerciseDetail はクエストやキャンペーンに含まれる種目
type ExerciseDetail struct {
	Name         string             `json:"name"`
	Sets         int                `json:"sets"`
	Reps         int                `json:"reps"`
	MuscleGroup  string             `json:"muscle_group,omitempty"`
	Instructions []string           `json:"instructions,omitempty"`
	Note         string             `json:"note,omitempty"`
	Alternatives []string           `json:"alternatives,omitempty"`
	UserFeedback ExerciseDifficulty `json:"user_feedback,omitempty"`
}

// Quest はデイリークエスト1件。IsCompleted が true になったら以後変化しない。
type Quest struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	XPReward         int              `json:"xp_reward"`
	Type             QuestType        `json:"type"`
	IsCompleted      bool             `json:"is_completed"`
	StatBonus        StatType         `json:"stat_bonus"`
	RelatedExercises []ExerciseDetail `json:"related_exercises,omitempty"`
	NutritionMenu    []string         `json:"nutrition_menu,omitempty"`
}

// DailyPlan は1日分のプラン (日付ごとに1件)
type DailyPlan struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	Quests         []Quest `json:"quests"`
	CaloriesTarget int     `json:"calories_target"`
	ProteinTarget  int     `json:"protein_target"`
	WorkoutFocus   string  `json:"workout_focus"`
}

// FindQuest は ID に一致するクエストのインデックスを返します。見つからなければ -1。
func (p *DailyPlan) FindQuest(questID string) int {
	for i := range p.Quests {
		if p.Quests[i].ID == questID {
			return i
		}
	}
	return -1
}

// CompleteQuestResponse はクエスト完了APIのレスポンス
type CompleteQuestResponse struct {
	Profile         *Profile   `json:"profile"`
	Plan            *DailyPlan `json:"plan"`
	GlobalLeveledUp bool       `json:"global_leveled_up"`
	StatLeveledUp   bool       `json:"stat_leveled_up"`
}
