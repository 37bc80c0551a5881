package handlers

import (
	"net/http"

	"go_titan_quest/internal/model"
	"go_titan_quest/internal/service"
	"go_titan_quest/internal/webutil"
)

type InsightHandler struct {
	service service.InsightService
}

func NewInsightHandler(s service.InsightService) *InsightHandler {
	return &InsightHandler{service: s}
}

func (h *InsightHandler) ListTips(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "ListTips")
	if !ok {
		return
	}

	tips, err := h.service.ListTips(r.Context(), playerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if tips == nil {
		tips = []model.HealthTip{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, tips, logger)
}

// EnsureDailyTip は今日のアドバイスを返します。既にあれば同じものを返す。
func (h *InsightHandler) EnsureDailyTip(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "EnsureDailyTip")
	if !ok {
		return
	}

	tip, err := h.service.EnsureDailyTip(r.Context(), playerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, tip, logger)
}

func (h *InsightHandler) GenerateWeeklyReview(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "GenerateWeeklyReview")
	if !ok {
		return
	}

	review, err := h.service.GenerateWeeklyReview(r.Context(), playerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, review, logger)
}

func (h *InsightHandler) ConsultOracle(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "ConsultOracle")
	if !ok {
		return
	}

	var req model.OracleRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	reply, err := h.service.ConsultOracle(r.Context(), playerID, req.Query)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.OracleResponse{Reply: reply}, logger)
}
