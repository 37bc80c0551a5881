package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requirePlayer はコンテキストからプレイヤーIDを取り出します。無ければ 401 を書き込んで ok=false。
func requirePlayer(w http.ResponseWriter, r *http.Request, handler string) (uuid.UUID, *slog.Logger, bool) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", handler))

	playerID, err := middleware.GetPlayerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, logger, false
	}
	return playerID, logger.With(slog.String("player_id", playerID.String())), true
}

// indexParam は URL パスの 0 以上の整数パラメータを読み取ります
func indexParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, model.NewAppError("INVALID_URL_PARAM", name+"は0以上の整数で指定してください。", name, model.ErrInvalidInput)
	}
	return n, nil
}
