package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHeaders_MasksSensitive(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("X-Goog-Api-Key", "key")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")

	got := formatHeaders(h)
	assert.Equal(t, "[SENSITIVE]", got["Authorization"])
	assert.Equal(t, "[SENSITIVE]", got["X-Goog-Api-Key"])
	assert.Equal(t, "application/json, text/plain", got["Accept"])
}

func TestFormatBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"正常系: 機密フィールドをマスク", `{"email":"hero@example.com","name":"Hero"}`, `"email":"[SENSITIVE]"`},
		{"正常系: JSON以外はそのまま", `plain text`, `plain text`},
		{"境界値: 空", ``, ``},
		{"境界値: 上限超えは切り詰め", strings.Repeat("a", maxLoggedBodyBytes+10), "...(truncated)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, formatBody([]byte(tt.body)), tt.want)
		})
	}
	assert.NotContains(t, formatBody([]byte(`{"access_token":"abc"}`)), "abc")
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenBody string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		seenBody = string(b)
		GetLogger(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"access_token":"issued-token"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", strings.NewReader(`{"email":"hero@example.com"}`))
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	LoggingMiddleware(logger)(next).ServeHTTP(rr, req)

	// ハンドラはボディをそのまま読める
	assert.Equal(t, `{"email":"hero@example.com"}`, seenBody)
	assert.Equal(t, http.StatusTeapot, rr.Code)

	logs := buf.String()
	assert.Contains(t, logs, `"msg":"Request started"`)
	assert.Contains(t, logs, `"msg":"inside handler"`)
	assert.Contains(t, logs, `"status":418`)
	assert.Contains(t, logs, `"level":"WARN"`)
	assert.NotContains(t, logs, "hero@example.com")
	assert.NotContains(t, logs, "issued-token")
	assert.NotContains(t, logs, "Bearer secret")
}
