package progression

import (
	"testing"

	"go_titan_quest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWeeklyPlan() model.WeeklyPlan {
	return model.WeeklyPlan{
		Schedule: []model.DailySchedule{
			{
				Day:   "Monday",
				Focus: "Upper body",
				Exercises: []model.ExerciseDetail{
					{
						Name:         "Push-up",
						Sets:         3,
						Reps:         12,
						Instructions: []string{"Keep your back straight", "Lower slowly"},
						Alternatives: []string{"A", "B"},
					},
					{Name: "Plank", Sets: 3, Reps: 1},
				},
			},
			{
				Day:       "Wednesday",
				Focus:     "Legs",
				Exercises: []model.ExerciseDetail{{Name: "Squat", Sets: 4, Reps: 10}},
			},
		},
		Nutrition: model.NutritionPlan{DailyCalories: 2200, MacroSplit: "40/30/30"},
	}
}

func TestSwapExercise(t *testing.T) {
	tests := []struct {
		name             string
		day, ex          int
		newName          string
		wantName         string
		wantAlternatives []string
		wantInstructions []string
		wantErr          error
		wantSame         bool
	}{
		{
			name:    "正常系: 代替種目に入れ替え",
			day:     0, ex: 0,
			newName:          "A",
			wantName:         "A",
			wantAlternatives: []string{"B", "Push-up"},
			wantInstructions: []string{},
		},
		{
			name:    "正常系: 代替リストにない名前でも入れ替え可能",
			day:     0, ex: 0,
			newName:          "  Diamond Push-up ",
			wantName:         "Diamond Push-up",
			wantAlternatives: []string{"A", "B", "Push-up"},
			wantInstructions: []string{},
		},
		{
			name:    "正常系: 代替リストが空でも元の名前を追加",
			day:     1, ex: 0,
			newName:          "Lunge",
			wantName:         "Lunge",
			wantAlternatives: []string{"Squat"},
			wantInstructions: []string{},
		},
		{
			name:    "境界値: 同じ名前なら何もしない",
			day:     0, ex: 0,
			newName:  "Push-up",
			wantSame: true,
		},
		{
			name:    "異常系: 空の名前",
			day:     0, ex: 0,
			newName: "   ",
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: 日のインデックスが範囲外",
			day:     5, ex: 0,
			newName: "A",
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: 種目のインデックスが範囲外",
			day:     0, ex: -1,
			newName: "A",
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := newTestWeeklyPlan()
			original := newTestWeeklyPlan()

			got, err := SwapExercise(plan, tt.day, tt.ex, tt.newName)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, original, got)
				return
			}
			require.NoError(t, err)
			if tt.wantSame {
				assert.Equal(t, original, got)
				return
			}

			swapped := got.Schedule[tt.day].Exercises[tt.ex]
			assert.Equal(t, tt.wantName, swapped.Name)
			assert.Equal(t, tt.wantAlternatives, swapped.Alternatives)
			assert.Equal(t, tt.wantInstructions, swapped.Instructions)
			assert.Equal(t, original.Schedule[tt.day].Exercises[tt.ex].Sets, swapped.Sets)

			// 入力プランは変更されない
			assert.Equal(t, original, plan)
		})
	}
}

func TestRateExercise(t *testing.T) {
	tests := []struct {
		name       string
		day, ex    int
		difficulty model.ExerciseDifficulty
		wantErr    bool
	}{
		{"正常系: EASY", 0, 1, model.DifficultyEasy, false},
		{"正常系: HARD", 1, 0, model.DifficultyHard, false},
		{"異常系: 未定義の難易度", 0, 0, "BRUTAL", true},
		{"異常系: 範囲外", 0, 2, model.DifficultyNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := newTestWeeklyPlan()

			got, err := RateExercise(plan, tt.day, tt.ex, tt.difficulty)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.difficulty, got.Schedule[tt.day].Exercises[tt.ex].UserFeedback)
			assert.Empty(t, plan.Schedule[tt.day].Exercises[tt.ex].UserFeedback)
		})
	}
}
