package content

import "google.golang.org/genai"

// 生成AIに渡すレスポンススキーマ。キー名は parse.go の読み取りと対応させる。

func stringSchema() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }
func numberSchema() *genai.Schema { return &genai.Schema{Type: genai.TypeNumber} }

func enumSchema(values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Enum: values}
}

func arrayOf(item *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: item}
}

func exerciseSchema(withAlternatives bool) *genai.Schema {
	s := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":         stringSchema(),
			"sets":         numberSchema(),
			"reps":         numberSchema(),
			"muscleGroup":  stringSchema(),
			"instructions": arrayOf(stringSchema()),
			"note":         stringSchema(),
		},
		Required: []string{"name", "sets", "reps"},
	}
	if withAlternatives {
		s.Properties["alternatives"] = arrayOf(stringSchema())
	}
	return s
}

var dailyPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"caloriesTarget": numberSchema(),
		"proteinTarget":  numberSchema(),
		"workoutFocus":   stringSchema(),
		"quests": arrayOf(&genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":               stringSchema(),
				"title":            stringSchema(),
				"description":      stringSchema(),
				"xpReward":         numberSchema(),
				"type":             enumSchema("WORKOUT", "NUTRITION", "LIFESTYLE"),
				"statBonus":        enumSchema("STR", "AGI", "VIT", "INT", "CHA"),
				"nutritionMenu":    arrayOf(stringSchema()),
				"relatedExercises": arrayOf(exerciseSchema(false)),
			},
			Required: []string{"id", "title", "description", "xpReward", "type", "statBonus"},
		}),
	},
	Required: []string{"caloriesTarget", "proteinTarget", "workoutFocus", "quests"},
}

var healthTipSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"content":  stringSchema(),
		"category": enumSchema("NUTRITION", "WORKOUT", "MENTAL"),
	},
}

var weeklyReviewSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"evaluation": stringSchema(),
		"rank":       enumSchema("S", "A", "B", "C", "D"),
	},
}

var challengeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":        stringSchema(),
		"lore":         stringSchema(),
		"description":  stringSchema(),
		"requirements": stringSchema(),
		"difficulty":   enumSchema("NORMAL", "HARD", "INSANE"),
		"xpReward":     numberSchema(),
		"type":         enumSchema("REP_MAX", "TIME_MAX", "TIME_TRIAL"),
	},
	Required: []string{"title", "lore", "description", "requirements", "difficulty", "xpReward", "type"},
}

var weeklyCampaignSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"schedule": arrayOf(&genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"day":       stringSchema(),
				"focus":     stringSchema(),
				"exercises": arrayOf(exerciseSchema(true)),
			},
			Required: []string{"day", "focus", "exercises"},
		}),
		"nutrition": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"dailyCalories": numberSchema(),
				"macroSplit":    stringSchema(),
				"meals":         arrayOf(stringSchema()),
				"tips":          arrayOf(stringSchema()),
			},
			Required: []string{"dailyCalories", "macroSplit", "meals", "tips"},
		},
	},
	Required: []string{"schedule", "nutrition"},
}
