package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"go_titan_quest/internal/model"
	"go_titan_quest/internal/progression"
	"go_titan_quest/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) (*gorm.DB, uuid.UUID) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	id := uuid.New()
	profile := progression.NewProfile(model.OnboardingRequest{
		Name: "Hero", Age: 20, Height: 170, Weight: 65, TargetWeight: 60,
		Faction: model.FactionShadowRunner, TrainingStyle: model.StyleCalisthenics,
	}, "2026-10-18")
	require.NoError(t, repository.NewGormProfileRepository().Create(context.Background(), db, id, &profile))
	require.NoError(t, repository.NewGormPlanRepository().Save(context.Background(), db, id, &model.DailyPlan{
		Date:   "2026-10-18",
		Quests: []model.Quest{{ID: "q-1", Title: "Run", XPReward: 50, Type: model.QuestWorkout, StatBonus: model.StatAGI}},
	}))
	return db, id
}

func TestListPlayers(t *testing.T) {
	db, id := setupDB(t)
	var out bytes.Buffer

	require.NoError(t, listPlayers(context.Background(), db, &out))
	assert.Contains(t, out.String(), id.String())
	assert.Contains(t, out.String(), "ROOKIE_WARRIOR")
	assert.Contains(t, out.String(), "1 player(s)")
}

func TestShowProfile(t *testing.T) {
	db, id := setupDB(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "正常系: パス指定", args: []string{"-player", id.String(), "-path", "stats.STR.max_xp"}, want: "100\n"},
		{name: "正常系: 全体", args: []string{"-player", id.String()}, want: `"name": "Hero"`},
		{name: "異常系: 存在しないパス", args: []string{"-player", id.String(), "-path", "nope"}, wantErr: true},
		{name: "異常系: 未登録のプレイヤー", args: []string{"-player", uuid.NewString()}, wantErr: true},
		{name: "異常系: UUIDでない", args: []string{"-player", "hero"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := showProfile(context.Background(), db, tt.args, &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestShowPlans(t *testing.T) {
	db, id := setupDB(t)
	var out bytes.Buffer

	err := showPlans(context.Background(), db, []string{"-player", id.String(), "-from", "2026-10-12", "-to", "2026-10-18", "-path", "#.quests.0.id"}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `["q-1"]`, out.String())
}

func TestRun_RequiresCommand(t *testing.T) {
	err := run(nil, &bytes.Buffer{}, nil)
	assert.EqualError(t, err, usage)
}
