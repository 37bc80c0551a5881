package handlers_test

import (
	"net/http"
	"testing"

	"go_titan_quest/internal/model"
	"go_titan_quest/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func TestCampaignHandler_CreateCampaign(t *testing.T) {
	playerID := uuid.New()

	tests := []struct {
		name      string
		payload   interface{}
		setupMock func(m *mocks.CampaignService)
		wantCode  int
		wantErr   string
	}{
		{
			name: "正常系: キャンペーン生成",
			payload: map[string]interface{}{
				"duration_minutes": 30, "frequency_per_week": 4, "target_weight": 63, "specific_goal": "懸垂10回",
			},
			setupMock: func(m *mocks.CampaignService) {
				m.On("CreateCampaign", mock.Anything, playerID, &model.CampaignConfig{
					DurationMinutes: 30, FrequencyPerWeek: 4, TargetWeight: 63, SpecificGoal: "懸垂10回",
				}).Return(newTestProfile(), nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "異常系: 所要時間が選択肢に無い",
			payload: map[string]interface{}{
				"duration_minutes": 45, "frequency_per_week": 4, "target_weight": 63,
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name: "境界値: 週7回",
			payload: map[string]interface{}{
				"duration_minutes": 30, "frequency_per_week": 7, "target_weight": 63,
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, m := newMockServer(t)
			if tt.setupMock != nil {
				tt.setupMock(m.campaign)
			}
			sendRequest(t, server,
				httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/campaigns", Body: tt.payload, PlayerID: &playerID},
				httpResponseExpectations{ExpectedCode: tt.wantCode, ExpectedErrorCode: tt.wantErr},
			)
		})
	}
}

func TestCampaignHandler_Exercises(t *testing.T) {
	playerID := uuid.New()

	tests := []struct {
		name      string
		path      string
		payload   interface{}
		setupMock func(m *mocks.CampaignService)
		wantCode  int
		wantErr   string
	}{
		{
			name:    "正常系: 種目の入れ替え",
			path:    "/api/v1/campaigns/days/1/exercises/2/swap",
			payload: map[string]string{"new_name": "ディップス"},
			setupMock: func(m *mocks.CampaignService) {
				m.On("SwapExercise", mock.Anything, playerID, 1, 2, &model.SwapExerciseRequest{NewName: "ディップス"}).
					Return(newTestProfile(), nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "正常系: 難易度の評価",
			path:    "/api/v1/campaigns/days/0/exercises/0/rating",
			payload: map[string]string{"difficulty": "HARD"},
			setupMock: func(m *mocks.CampaignService) {
				m.On("RateExercise", mock.Anything, playerID, 0, 0, &model.RateExerciseRequest{Difficulty: model.DifficultyHard}).
					Return(newTestProfile(), nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "異常系: 日のインデックスが数値でない",
			path:     "/api/v1/campaigns/days/monday/exercises/0/swap",
			payload:  map[string]string{"new_name": "ディップス"},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_URL_PARAM",
		},
		{
			name:     "境界値: 種目のインデックスが負",
			path:     "/api/v1/campaigns/days/0/exercises/-1/rating",
			payload:  map[string]string{"difficulty": "EASY"},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_URL_PARAM",
		},
		{
			name:     "異常系: 未知の難易度",
			path:     "/api/v1/campaigns/days/0/exercises/0/rating",
			payload:  map[string]string{"difficulty": "EXTREME"},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:    "異常系: キャンペーン未作成",
			path:    "/api/v1/campaigns/days/0/exercises/0/swap",
			payload: map[string]string{"new_name": "スクワット"},
			setupMock: func(m *mocks.CampaignService) {
				m.On("SwapExercise", mock.Anything, playerID, 0, 0, mock.AnythingOfType("*model.SwapExerciseRequest")).
					Return(nil, model.NewAppError("NO_ACTIVE_CAMPAIGN", "有効なキャンペーンがありません。", "", model.ErrNotFound)).Once()
			},
			wantCode: http.StatusNotFound,
			wantErr:  "NO_ACTIVE_CAMPAIGN",
		},
		{
			name:    "異常系: 範囲外のインデックス",
			path:    "/api/v1/campaigns/days/9/exercises/0/swap",
			payload: map[string]string{"new_name": "スクワット"},
			setupMock: func(m *mocks.CampaignService) {
				m.On("SwapExercise", mock.Anything, playerID, 9, 0, mock.AnythingOfType("*model.SwapExerciseRequest")).
					Return(nil, model.NewAppError("INVALID_EXERCISE", "指定された種目が見つかりません。", "", model.ErrInvalidInput)).Once()
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_EXERCISE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, m := newMockServer(t)
			if tt.setupMock != nil {
				tt.setupMock(m.campaign)
			}
			sendRequest(t, server,
				httpRequestDetails{Method: http.MethodPut, Path: tt.path, Body: tt.payload, PlayerID: &playerID},
				httpResponseExpectations{ExpectedCode: tt.wantCode, ExpectedErrorCode: tt.wantErr},
			)
		})
	}
}
