package content

import (
	"fmt"
	"strings"

	"go_titan_quest/internal/model"
)

var factionGoals = map[model.Faction]string{
	model.FactionIronClan:     "Maximize muscle (hypertrophy), lift heavy, eat plenty of protein.",
	model.FactionShadowRunner: "Lose fat, build endurance (cardio), stay in a calorie deficit, stay agile.",
	model.FactionTitanTribe:   "Gain weight and size (bulking), eat in a calorie surplus.",
	model.FactionBalanceOrder: "Maintain health, balance and flexibility, keep in shape.",
}

var classFocus = map[model.UserClass]string{
	model.ClassYoungAdventurer: "Age 13-17, still growing. Prefer calisthenics, cardio and nutrition for growth. Avoid heavy spinal loading.",
	model.ClassRookieWarrior:   "Age 18-24, peak recovery. High intensity training, fast muscle gain, push limits.",
	model.ClassEliteKnight:     "Age 25-35, stable. Focus on belly fat control, balancing work and training, hormones.",
	model.ClassGuardian:        "Age 36-50, durable. Focus on endurance, heart health, stretching and enough sleep.",
	model.ClassElderSage:       "Age 50+, safety first. Yoga, walking, gentle exercise, clean nutrition.",
}

// profileContext はどのプロンプトにも入れるプレイヤーの前提情報
func profileContext(p model.Profile) string {
	return fmt.Sprintf(
		"Faction: %s - Goal: %s\nClass: %s - Traits: %s\nTraining style: %s\nLevel: %d, weight %.1fkg, target %.1fkg.",
		p.Faction, factionGoals[p.Faction],
		p.UserClass, classFocus[p.UserClass],
		p.TrainingStyle,
		p.Level, p.Weight, p.TargetWeight,
	)
}

// questStyleRule は器具に関する制約。自重トレーニングを選んだ場合は器具を使わせない。
func questStyleRule(style model.TrainingStyle) string {
	if style == model.StyleCalisthenics {
		return "MANDATORY: the player chose CALISTHENICS. WORKOUT quests MUST be bodyweight exercises " +
			"(push-ups, pull-ups, dips, squats, lunges, plank, burpees...). NEVER require dumbbells, barbells or gym machines."
	}
	return "MANDATORY: the player chose GYM. WORKOUT quests should prefer dumbbells, barbells and machines " +
		"(bench press, deadlift, squat rack, lat pulldown, dumbbell curls...)."
}

func challengeStyleRule(style model.TrainingStyle) string {
	if style == model.StyleCalisthenics {
		return "IMPORTANT: the player trains CALISTHENICS. The boss challenge MUST be bodyweight " +
			"(max push-ups, max plank time, 100 burpees, squat jumps...). Do NOT require weights."
	}
	return "IMPORTANT: the player trains at a GYM. The challenge may use gym lifts (e.g. bench press bodyweight AMRAP) or bodyweight conditioning."
}

func languageRule(language string) string {
	return fmt.Sprintf("All text in the output (titles, descriptions, meal names, instructions, notes) MUST be written in %s.", language)
}

func dailyPlanPrompt(p model.Profile, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an RPG guild master. Create today's daily quests for the hero %s (%s, %s).\n\n", p.Name, p.UserClass, p.Faction)
	fmt.Fprintf(&b, "CONTEXT:\n%s\n\n", profileContext(p))
	fmt.Fprintf(&b, "EXERCISE RULE:\n%s\n\n", questStyleRule(p.TrainingStyle))
	b.WriteString("STATS (classify each quest by the stat it trains):\n" +
		"- STR: strength, weights, compound lifts (gym) or hard bodyweight variations (calisthenics).\n" +
		"- AGI: cardio, running, HIIT, stretching.\n" +
		"- VIT: eating, sleep, hydration.\n" +
		"- INT: learning, reading tips.\n" +
		"- CHA: discipline, check-ins, mindset.\n\n")
	b.WriteString("REQUIREMENTS:\n" +
		"1. NUTRITION (VIT) quests must include 'nutritionMenu' with a concrete menu matching the calorie and protein targets.\n" +
		"2. WORKOUT quests must include detailed 'relatedExercises'.\n" +
		"3. " + languageRule(language) + "\n\nOutput JSON.")
	return b.String()
}

func healthTipPrompt(p model.Profile, language string) string {
	return fmt.Sprintf("Give one short piece of health advice (under 30 words) in %s for:\n%s\n"+
		"Style: an ancient prophecy from the Oracle. It raises the INT stat.", language, profileContext(p))
}

func weeklyReviewPrompt(p model.Profile, stats ReviewStats, language string) string {
	return fmt.Sprintf("Review the week of %s in %s.\nLevel: %d.\nWeight: %.1fkg (change this week: %+.1fkg).\n"+
		"Quests completed this week: %d. Current XP: %d.\n"+
		"Write a short evaluation (under 50 words). Rank: S/A/B/C/D.",
		p.Name, language, p.Level, p.Weight, stats.WeightChange, stats.QuestsCompleted, stats.TotalXP)
}

func challengePrompt(p model.Profile, language string) string {
	return fmt.Sprintf("Create a WEEKLY BOSS for:\n%s\n\n%s\n\n"+
		"This is a combined fitness test. Difficulty is based on the player's class.\n"+
		"It must be very hard but achievable, testing limits (max reps, max time).\n"+
		"Story: a monster that embodies laziness or a physical trial.\n"+
		"Language: %s.\n\nJSON format.", profileContext(p), challengeStyleRule(p.TrainingStyle), language)
}

func weeklyCampaignPrompt(p model.Profile, cfg model.CampaignConfig, language string) string {
	goal := cfg.SpecificGoal
	if strings.TrimSpace(goal) == "" {
		goal = "none"
	}
	return fmt.Sprintf("Design a one-week training campaign for:\n%s\n\n%s\n\n"+
		"Sessions per week: %d. Minutes per session: %d. Target weight: %.1fkg. Specific goal: %s.\n"+
		"Return exactly %d schedule days. Give each exercise 2-3 'alternatives' of similar difficulty.\n"+
		"Include a nutrition plan with daily calories, macro split, meals and tips.\n%s\n\nOutput JSON.",
		profileContext(p), questStyleRule(p.TrainingStyle),
		cfg.FrequencyPerWeek, cfg.DurationMinutes, cfg.TargetWeight, goal,
		cfg.FrequencyPerWeek, languageRule(language))
}

func oracleInstruction(p model.Profile, language string) string {
	return fmt.Sprintf("You are the Oracle. Context:\n%s\nAnswer briefly in %s.", profileContext(p), language)
}
