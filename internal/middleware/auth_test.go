package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_titan_quest/internal/config"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	cfg.JWT.SecretKey = testSecret
	cfg.JWT.Issuer = "titan-quest"
	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, secret, issuer, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := &model.JWTCustomClaims{
		PlayerName: "Hero",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTAuthMiddleware(t *testing.T) {
	playerID := uuid.New()
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		header     string
		wantCode   int
		wantErr    string
		wantPlayer bool
	}{
		{
			name:       "正常系: 有効なトークン",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, "titan-quest", playerID.String(), future),
			wantCode:   http.StatusOK,
			wantPlayer: true,
		},
		{
			name:       "正常系: スキームの大文字小文字は問わない",
			header:     "bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, "titan-quest", playerID.String(), future),
			wantCode:   http.StatusOK,
			wantPlayer: true,
		},
		{
			name:     "異常系: ヘッダーが無い",
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:     "異常系: Bearer 以外のスキーム",
			header:   "Basic dXNlcjpwYXNz",
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:     "異常系: 有効期限切れ",
			header:   "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, "titan-quest", playerID.String(), time.Now().Add(-time.Minute)),
			wantCode: http.StatusUnauthorized,
			wantErr:  "TOKEN_EXPIRED",
		},
		{
			name:     "異常系: 署名鍵が違う",
			header:   "Bearer " + signToken(t, jwt.SigningMethodHS256, "other-secret", "titan-quest", playerID.String(), future),
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:     "異常系: HS256 以外のアルゴリズム",
			header:   "Bearer " + signToken(t, jwt.SigningMethodHS512, testSecret, "titan-quest", playerID.String(), future),
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:     "異常系: 発行者が違う",
			header:   "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, "someone-else", playerID.String(), future),
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:     "異常系: subject が UUID でない",
			header:   "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, "titan-quest", "hero", future),
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPlayer uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, err := middleware.GetPlayerIDFromContext(r.Context())
				require.NoError(t, err)
				gotPlayer = id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			middleware.JWTAuthMiddleware(newAuthConfig())(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantPlayer {
				assert.Equal(t, playerID, gotPlayer)
			}
			if tt.wantErr != "" {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.Equal(t, tt.wantErr, errResp.Error.Code)
			}
		})
	}
}

func TestDevPlayerContextMiddleware(t *testing.T) {
	playerID := uuid.New()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := middleware.GetPlayerIDFromContext(r.Context())
		require.NoError(t, err)
		assert.Equal(t, playerID, id)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.PlayerIDHeader, playerID.String())
	rr := httptest.NewRecorder()
	middleware.DevPlayerContextMiddleware(next).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.PlayerIDHeader, "not-a-uuid")
	rr = httptest.NewRecorder()
	middleware.DevPlayerContextMiddleware(next).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetPlayerIDFromContext_Missing(t *testing.T) {
	_, err := middleware.GetPlayerIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.ErrorIs(t, err, model.ErrInternalServer)
}
