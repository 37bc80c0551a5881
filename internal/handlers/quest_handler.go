package handlers

import (
	"log/slog"
	"net/http"

	"go_titan_quest/internal/service"
	"go_titan_quest/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type QuestHandler struct {
	service service.QuestService
}

func NewQuestHandler(s service.QuestService) *QuestHandler {
	return &QuestHandler{service: s}
}

// GetTodayPlan は今日のデイリープランを返します (無ければ生成)
func (h *QuestHandler) GetTodayPlan(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "GetTodayPlan")
	if !ok {
		return
	}

	plan, err := h.service.GetTodayPlan(r.Context(), playerID)
	if err != nil {
		logger.Error("Failed to get today's plan", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, plan, logger)
}

// CompleteQuest はクエストを完了し、更新後のプロフィールとプランを返します
func (h *QuestHandler) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "CompleteQuest")
	if !ok {
		return
	}

	date := chi.URLParam(r, "date")
	questID := chi.URLParam(r, "quest_id")
	logger = logger.With(slog.String("date", date), slog.String("quest_id", questID))

	resp, err := h.service.CompleteQuest(r.Context(), playerID, date, questID)
	if err != nil {
		logger.Warn("Failed to complete quest", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
