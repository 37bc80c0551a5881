// internal/model/campaign.go
package model

// CampaignConfig は週間キャンペーンの生成条件
type CampaignConfig struct {
	DurationMinutes  int     `json:"duration_minutes" validate:"required,oneof=10 20 30 50"`
	FrequencyPerWeek int     `json:"frequency_per_week" validate:"required,oneof=3 4 5 6"`
	TargetWeight     float64 `json:"target_weight" validate:"required,gt=0,lte=500"`
	SpecificGoal     string  `json:"specific_goal" validate:"max=500"`
}

type DailySchedule struct {
	Day       string           `json:"day"`
	Focus     string           `json:"focus"`
	Exercises []ExerciseDetail `json:"exercises"`
}

type NutritionPlan struct {
	DailyCalories int      `json:"daily_calories"`
	MacroSplit    string   `json:"macro_split"`
	Meals         []string `json:"meals"`
	Tips          []string `json:"tips"`
}

// WeeklyPlan は週間キャンペーンの内容 (プロフィールの active_weekly_plan に保持)
type WeeklyPlan struct {
	Schedule  []DailySchedule `json:"schedule"`
	Nutrition NutritionPlan   `json:"nutrition"`
}

type SwapExerciseRequest struct {
	NewName string `json:"new_name" validate:"required,min=1,max=200"`
}

type RateExerciseRequest struct {
	Difficulty ExerciseDifficulty `json:"difficulty" validate:"required,oneof=EASY NORMAL HARD"`
}
