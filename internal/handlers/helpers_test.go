// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_titan_quest/internal/handlers"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method   string
	Path     string
	Body     interface{}
	PlayerID *uuid.UUID
	Headers  map[string]string
}

// httpResponseExpectations はHTTPレスポンスの検証に必要な期待値をまとめます。
type httpResponseExpectations struct {
	ExpectedCode      int
	ExpectedErrorCode string
}

// serviceMocks はルーターに差し込むサービスのモック一式
type serviceMocks struct {
	profile   *mocks.ProfileService
	quest     *mocks.QuestService
	challenge *mocks.ChallengeService
	insight   *mocks.InsightService
	campaign  *mocks.CampaignService
}

// newMockServer はモックのサービスで組み立てたルーターを httptest.Server で起動します。
// 認証は開発用の X-Player-ID ヘッダーで行う。
func newMockServer(t *testing.T) (*httptest.Server, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		profile:   mocks.NewProfileService(t),
		quest:     mocks.NewQuestService(t),
		challenge: mocks.NewChallengeService(t),
		insight:   mocks.NewInsightService(t),
		campaign:  mocks.NewCampaignService(t),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware(slog.Default()))

	handlers.RegisterRoutes(r, handlers.Handlers{
		Profile:   handlers.NewProfileHandler(m.profile),
		Quest:     handlers.NewQuestHandler(m.quest),
		Challenge: handlers.NewChallengeHandler(m.challenge),
		Insight:   handlers.NewInsightHandler(m.insight),
		Campaign:  handlers.NewCampaignHandler(m.campaign),
	}, middleware.DevPlayerContextMiddleware)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, m
}

// sendRequest はHTTPリクエストを送信し、ステータスコードとボディを返します。
// ステータスコードとエラーコードのアサーションもここで行います。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) (int, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.PlayerID != nil {
		req.Header.Set(middleware.PlayerIDHeader, details.PlayerID.String())
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	if expectations.ExpectedErrorCode != "" {
		verifyErrorResponse(t, respBodyBytes, expectations.ExpectedErrorCode)
	}
	return resp.StatusCode, respBodyBytes
}

// verifyErrorResponse はエラーレスポンスのコードを検証します。
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &errResp), "error body should be APIErrorResponse: %s", string(bodyBytes))
	assert.Equal(t, expectedCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
}

// decodeBody はレスポンスボディを指定の型にデコードします
func decodeBody[T any](t *testing.T, bodyBytes []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(bodyBytes, &v), "Failed to unmarshal response: %s", string(bodyBytes))
	return v
}

func newTestProfile() *model.Profile {
	return &model.Profile{
		Name:          "Hero",
		Age:           30,
		Height:        175,
		Weight:        70,
		TargetWeight:  65,
		Faction:       model.FactionIronClan,
		UserClass:     model.ClassEliteKnight,
		TrainingStyle: model.StyleGym,
		Level:         1,
		MaxXP:         1000,
		Stats: map[model.StatType]model.StatDetail{
			model.StatSTR: {Level: 1, MaxXP: 100},
		},
	}
}

// minInt は2つのintのうち小さい方を返します。
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
