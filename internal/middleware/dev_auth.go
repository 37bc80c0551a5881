// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_titan_quest/internal/model"
	"go_titan_quest/internal/webutil"

	"github.com/google/uuid"
)

// PlayerIDHeader は開発時にプレイヤーを指定するヘッダー
const PlayerIDHeader = "X-Player-ID"

// DevPlayerContextMiddleware は開発時用ミドルウェアです。
// X-Player-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// プロフィールの存在チェックは行いません。
func DevPlayerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(PlayerIDHeader)
		if raw == "" {
			logger.Warn("[DEV AUTH] X-Player-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Player-IDヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		playerID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Player-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Player-IDの形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] Player ID set to context (no validation)", "player_id", playerID.String())
		next.ServeHTTP(w, r.WithContext(withPlayer(r.Context(), playerID)))
	})
}
