package service_test

import (
	"fmt"
	"testing"
	"time"

	"go_titan_quest/internal/model"
	"go_titan_quest/internal/progression"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testToday = "2026-10-18"

// fixedClock は常に同じ時刻を返す Clock
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newFixedClock(t *testing.T, date string) fixedClock {
	t.Helper()
	d, err := time.Parse(model.RecordDateLayout, date)
	require.NoError(t, err)
	return fixedClock{now: d.Add(9 * time.Hour)}
}

// setupTestDB はテストごとに独立したインメモリDBを返します (トランザクション用)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")
	return db
}

func newTestProfile() model.Profile {
	return progression.NewProfile(model.OnboardingRequest{
		Name:          "Hero",
		Email:         "hero@example.com",
		Age:           30,
		Height:        175,
		Weight:        70,
		TargetWeight:  65,
		Faction:       model.FactionIronClan,
		TrainingStyle: model.StyleGym,
	}, "2026-10-12")
}

func newTestPlan(date string) *model.DailyPlan {
	return &model.DailyPlan{
		Date:           date,
		CaloriesTarget: 2200,
		ProteinTarget:  120,
		WorkoutFocus:   "Upper body",
		Quests: []model.Quest{
			{ID: "q-1", Title: "Bench press", XPReward: 100, Type: model.QuestWorkout, StatBonus: model.StatSTR},
			{ID: "q-2", Title: "Protein", XPReward: 40, Type: model.QuestNutrition, StatBonus: model.StatVIT},
		},
	}
}

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }
