package content

import (
	"fmt"
	"strings"

	"go_titan_quest/internal/model"

	"github.com/tidwall/gjson"
)

// 生成AIの応答は形が崩れることがあるため、gjson で必要なフィールドだけを寛容に読む。

const (
	defaultTipContent  = "Knowledge is power."
	defaultTipCategory = model.TipMental
	defaultReviewRank  = model.RankB
	defaultEvaluation  = "Keep going."
)

func parseRoot(raw string) (gjson.Result, error) {
	raw = strings.TrimSpace(raw)
	// ```json ... ``` で囲まれて返ってくる場合がある
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if !gjson.Valid(raw) {
		return gjson.Result{}, fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}
	root := gjson.Parse(raw)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected an object", ErrMalformedResponse)
	}
	return root, nil
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonNegative(n int64) int {
	if n < 0 {
		return 0
	}
	return int(n)
}

func parseExercise(r gjson.Result) (model.ExerciseDetail, bool) {
	name := strings.TrimSpace(r.Get("name").String())
	if name == "" {
		return model.ExerciseDetail{}, false
	}
	return model.ExerciseDetail{
		Name:         name,
		Sets:         nonNegative(r.Get("sets").Int()),
		Reps:         nonNegative(r.Get("reps").Int()),
		MuscleGroup:  r.Get("muscleGroup").String(),
		Instructions: stringList(r.Get("instructions")),
		Note:         r.Get("note").String(),
		Alternatives: stringList(r.Get("alternatives")),
	}, true
}

func parseExercises(r gjson.Result) []model.ExerciseDetail {
	var out []model.ExerciseDetail
	for _, item := range r.Array() {
		if ex, ok := parseExercise(item); ok {
			out = append(out, ex)
		}
	}
	return out
}

// defaultStatFor はステータスが欠けている・不正な場合に種類から補う
func defaultStatFor(t model.QuestType) model.StatType {
	switch t {
	case model.QuestWorkout:
		return model.StatSTR
	case model.QuestNutrition:
		return model.StatVIT
	default:
		return model.StatCHA
	}
}

func parseQuestType(s string) model.QuestType {
	switch t := model.QuestType(strings.ToUpper(s)); t {
	case model.QuestWorkout, model.QuestNutrition, model.QuestLifestyle:
		return t
	}
	return model.QuestLifestyle
}

// parseDailyPlan はデイリープランを読み取ります。クエストIDは重複・空なら振り直し、未完了で始める。
func parseDailyPlan(raw, date string) (*model.DailyPlan, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	items := root.Get("quests").Array()
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no quests", ErrMalformedResponse)
	}

	seen := make(map[string]bool, len(items))
	quests := make([]model.Quest, 0, len(items))
	for i, q := range items {
		title := strings.TrimSpace(q.Get("title").String())
		if title == "" {
			continue
		}
		id := strings.TrimSpace(q.Get("id").String())
		for n := i + 1; id == "" || seen[id]; n++ {
			id = fmt.Sprintf("q-%d", n)
		}
		seen[id] = true

		qt := parseQuestType(q.Get("type").String())
		stat := model.StatType(strings.ToUpper(q.Get("statBonus").String()))
		if !stat.Valid() {
			stat = defaultStatFor(qt)
		}

		quests = append(quests, model.Quest{
			ID:               id,
			Title:            title,
			Description:      q.Get("description").String(),
			XPReward:         nonNegative(q.Get("xpReward").Int()),
			Type:             qt,
			IsCompleted:      false,
			StatBonus:        stat,
			RelatedExercises: parseExercises(q.Get("relatedExercises")),
			NutritionMenu:    stringList(q.Get("nutritionMenu")),
		})
	}
	if len(quests) == 0 {
		return nil, fmt.Errorf("%w: no usable quests", ErrMalformedResponse)
	}

	return &model.DailyPlan{
		Date:           date,
		Quests:         quests,
		CaloriesTarget: nonNegative(root.Get("caloriesTarget").Int()),
		ProteinTarget:  nonNegative(root.Get("proteinTarget").Int()),
		WorkoutFocus:   root.Get("workoutFocus").String(),
	}, nil
}

// parseHealthTip は欠けたフィールドをデフォルトで補います
func parseHealthTip(raw string) (content string, category model.TipCategory, err error) {
	root, err := parseRoot(raw)
	if err != nil {
		return "", "", err
	}
	content = strings.TrimSpace(root.Get("content").String())
	if content == "" {
		content = defaultTipContent
	}
	category = model.TipCategory(strings.ToUpper(root.Get("category").String()))
	switch category {
	case model.TipNutrition, model.TipWorkout, model.TipMental:
	default:
		category = defaultTipCategory
	}
	return content, category, nil
}

func parseWeeklyReview(raw string) (rank model.ReviewRank, evaluation string, err error) {
	root, err := parseRoot(raw)
	if err != nil {
		return "", "", err
	}
	rank = model.ReviewRank(strings.ToUpper(root.Get("rank").String()))
	switch rank {
	case model.RankS, model.RankA, model.RankB, model.RankC, model.RankD:
	default:
		rank = defaultReviewRank
	}
	evaluation = strings.TrimSpace(root.Get("evaluation").String())
	if evaluation == "" {
		evaluation = defaultEvaluation
	}
	return rank, evaluation, nil
}

func parseChallenge(raw string) (*model.Challenge, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(root.Get("title").String())
	xp := root.Get("xpReward").Int()
	if title == "" || xp <= 0 {
		return nil, fmt.Errorf("%w: challenge without title or reward", ErrMalformedResponse)
	}

	difficulty := model.ChallengeDifficulty(strings.ToUpper(root.Get("difficulty").String()))
	switch difficulty {
	case model.ChallengeNormal, model.ChallengeHard, model.ChallengeInsane:
	default:
		difficulty = model.ChallengeHard
	}
	ctype := model.ChallengeType(strings.ToUpper(root.Get("type").String()))
	switch ctype {
	case model.ChallengeRepMax, model.ChallengeTimeMax, model.ChallengeTimeTrial:
	default:
		ctype = model.ChallengeRepMax
	}

	return &model.Challenge{
		Title:        title,
		Lore:         root.Get("lore").String(),
		Description:  root.Get("description").String(),
		Requirements: root.Get("requirements").String(),
		Difficulty:   difficulty,
		XPReward:     int(xp),
		Type:         ctype,
	}, nil
}

func parseWeeklyCampaign(raw string) (*model.WeeklyPlan, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	var schedule []model.DailySchedule
	for _, d := range root.Get("schedule").Array() {
		exercises := parseExercises(d.Get("exercises"))
		if len(exercises) == 0 {
			continue
		}
		schedule = append(schedule, model.DailySchedule{
			Day:       d.Get("day").String(),
			Focus:     d.Get("focus").String(),
			Exercises: exercises,
		})
	}
	if len(schedule) == 0 {
		return nil, fmt.Errorf("%w: empty schedule", ErrMalformedResponse)
	}

	n := root.Get("nutrition")
	return &model.WeeklyPlan{
		Schedule: schedule,
		Nutrition: model.NutritionPlan{
			DailyCalories: nonNegative(n.Get("dailyCalories").Int()),
			MacroSplit:    n.Get("macroSplit").String(),
			Meals:         stringList(n.Get("meals")),
			Tips:          stringList(n.Get("tips")),
		},
	}, nil
}
