package progression

import (
	"fmt"
	"strings"

	"go_titan_quest/internal/model"
)

// exerciseAt は日 → 種目の順にコピーを作り、書き換え対象のスライスとインデックスを返します。
// 他の日・他の種目は元のプランと共有したまま。
func exerciseAt(plan model.WeeklyPlan, dayIndex, exerciseIndex int) (model.WeeklyPlan, []model.ExerciseDetail, error) {
	if dayIndex < 0 || dayIndex >= len(plan.Schedule) {
		return plan, nil, fmt.Errorf("day index %d out of range: %w", dayIndex, model.ErrInvalidInput)
	}
	day := plan.Schedule[dayIndex]
	if exerciseIndex < 0 || exerciseIndex >= len(day.Exercises) {
		return plan, nil, fmt.Errorf("exercise index %d out of range: %w", exerciseIndex, model.ErrInvalidInput)
	}

	schedule := make([]model.DailySchedule, len(plan.Schedule))
	copy(schedule, plan.Schedule)
	exercises := make([]model.ExerciseDetail, len(day.Exercises))
	copy(exercises, day.Exercises)
	day.Exercises = exercises
	schedule[dayIndex] = day

	next := plan
	next.Schedule = schedule
	return next, exercises, nil
}

// SwapExercise は種目を代替種目に入れ替えます。
// 手順は元の種目のものなので空にし、元の名前は代替リストに戻します (選んだ名前は除く)。
func SwapExercise(plan model.WeeklyPlan, dayIndex, exerciseIndex int, newName string) (model.WeeklyPlan, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return plan, fmt.Errorf("new exercise name is empty: %w", model.ErrInvalidInput)
	}

	next, exercises, err := exerciseAt(plan, dayIndex, exerciseIndex)
	if err != nil {
		return plan, err
	}

	old := exercises[exerciseIndex]
	if old.Name == newName {
		return plan, nil
	}

	alternatives := make([]string, 0, len(old.Alternatives)+1)
	for _, a := range old.Alternatives {
		if a != newName {
			alternatives = append(alternatives, a)
		}
	}
	alternatives = append(alternatives, old.Name)

	swapped := old
	swapped.Name = newName
	swapped.Instructions = []string{}
	swapped.Alternatives = alternatives
	exercises[exerciseIndex] = swapped

	return next, nil
}

// RateExercise は種目に体感難易度のフィードバックを付けます。XPには影響しない。
func RateExercise(plan model.WeeklyPlan, dayIndex, exerciseIndex int, difficulty model.ExerciseDifficulty) (model.WeeklyPlan, error) {
	switch difficulty {
	case model.DifficultyEasy, model.DifficultyNormal, model.DifficultyHard:
	default:
		return plan, fmt.Errorf("unknown difficulty %q: %w", difficulty, model.ErrInvalidInput)
	}

	next, exercises, err := exerciseAt(plan, dayIndex, exerciseIndex)
	if err != nil {
		return plan, err
	}
	exercises[exerciseIndex].UserFeedback = difficulty
	return next, nil
}
