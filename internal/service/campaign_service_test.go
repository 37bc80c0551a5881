package service_test

import (
	"context"
	"testing"

	contentmocks "go_titan_quest/internal/content/mocks"
	"go_titan_quest/internal/model"
	repomocks "go_titan_quest/internal/repository/mocks"
	"go_titan_quest/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWeeklyPlan() *model.WeeklyPlan {
	return &model.WeeklyPlan{
		Schedule: []model.DailySchedule{
			{
				Day:   "Monday",
				Focus: "Push",
				Exercises: []model.ExerciseDetail{
					{Name: "Push-up", Sets: 3, Reps: 12, Instructions: []string{"Keep core tight"}, Alternatives: []string{"Knee push-up", "Dips"}},
				},
			},
		},
		Nutrition: model.NutritionPlan{DailyCalories: 2300, MacroSplit: "40/30/30"},
	}
}

func Test_campaignService_CreateCampaign(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("正常系: 条件・プラン・目標体重を保存", func(t *testing.T) {
		profileRepo := repomocks.NewProfileRepository(t)
		provider := contentmocks.NewProvider(t)
		svc := service.NewCampaignService(setupTestDB(t), profileRepo, provider, service.NewSnapshotCache())

		profile := newTestProfile()
		cfg := model.CampaignConfig{DurationMinutes: 30, FrequencyPerWeek: 4, TargetWeight: 62, SpecificGoal: "Run 5km"}
		plan := newTestWeeklyPlan()

		profileRepo.On("FindByPlayerID", ctx, mock.AnythingOfType("*gorm.DB"), playerID).Return(&profile, nil).Twice()
		provider.On("WeeklyCampaign", ctx, profile, cfg).Return(plan, nil).Once()
		profileRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), playerID, mock.AnythingOfType("*model.Profile")).Return(nil).Once()

		got, err := svc.CreateCampaign(ctx, playerID, &cfg)
		require.NoError(t, err)
		assert.Equal(t, &cfg, got.CampaignConfig)
		assert.Equal(t, plan, got.ActiveWeeklyPlan)
		assert.Equal(t, 62.0, got.TargetWeight)
	})

	t.Run("異常系: 所要時間が選択肢外", func(t *testing.T) {
		svc := service.NewCampaignService(setupTestDB(t), repomocks.NewProfileRepository(t), contentmocks.NewProvider(t), service.NewSnapshotCache())
		cfg := model.CampaignConfig{DurationMinutes: 15, FrequencyPerWeek: 4, TargetWeight: 62}
		_, err := svc.CreateCampaign(ctx, playerID, &cfg)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_campaignService_SwapAndRate(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	tests := []struct {
		name     string
		noPlan   bool
		run      func(svc service.CampaignService) (*model.Profile, error)
		wantErr  error
		wantCode string
		check    func(t *testing.T, p *model.Profile)
	}{
		{
			name: "正常系: 入れ替え",
			run: func(svc service.CampaignService) (*model.Profile, error) {
				return svc.SwapExercise(ctx, playerID, 0, 0, &model.SwapExerciseRequest{NewName: "Dips"})
			},
			check: func(t *testing.T, p *model.Profile) {
				ex := p.ActiveWeeklyPlan.Schedule[0].Exercises[0]
				assert.Equal(t, "Dips", ex.Name)
				assert.Empty(t, ex.Instructions)
				assert.Equal(t, []string{"Knee push-up", "Push-up"}, ex.Alternatives)
			},
		},
		{
			name: "正常系: 評価",
			run: func(svc service.CampaignService) (*model.Profile, error) {
				return svc.RateExercise(ctx, playerID, 0, 0, &model.RateExerciseRequest{Difficulty: model.DifficultyHard})
			},
			check: func(t *testing.T, p *model.Profile) {
				assert.Equal(t, model.DifficultyHard, p.ActiveWeeklyPlan.Schedule[0].Exercises[0].UserFeedback)
			},
		},
		{
			name: "異常系: 範囲外の日",
			run: func(svc service.CampaignService) (*model.Profile, error) {
				return svc.SwapExercise(ctx, playerID, 5, 0, &model.SwapExerciseRequest{NewName: "Dips"})
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "INVALID_EXERCISE",
		},
		{
			name:   "異常系: キャンペーン未作成",
			noPlan: true,
			run: func(svc service.CampaignService) (*model.Profile, error) {
				return svc.RateExercise(ctx, playerID, 0, 0, &model.RateExerciseRequest{Difficulty: model.DifficultyEasy})
			},
			wantErr:  model.ErrNotFound,
			wantCode: "NO_ACTIVE_CAMPAIGN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := repomocks.NewProfileRepository(t)
			svc := service.NewCampaignService(setupTestDB(t), profileRepo, contentmocks.NewProvider(t), service.NewSnapshotCache())

			profile := newTestProfile()
			if !tt.noPlan {
				profile.ActiveWeeklyPlan = newTestWeeklyPlan()
			}
			profileRepo.On("FindByPlayerID", ctx, mock.AnythingOfType("*gorm.DB"), playerID).Return(&profile, nil).Once()
			if tt.wantErr == nil {
				profileRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), playerID, mock.AnythingOfType("*model.Profile")).Return(nil).Once()
			}

			got, err := tt.run(svc)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			// 元のプランは変更されない
			if !tt.noPlan {
				assert.Equal(t, "Push-up", profile.ActiveWeeklyPlan.Schedule[0].Exercises[0].Name)
			}
		})
	}
}
