package handlers

import (
	"log/slog"
	"net/http"

	"go_titan_quest/internal/model"
	"go_titan_quest/internal/service"
	"go_titan_quest/internal/webutil"
)

type CampaignHandler struct {
	service service.CampaignService
}

func NewCampaignHandler(s service.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: s}
}

// CreateCampaign は週間キャンペーンを生成し、更新後のプロフィールを返します
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "CreateCampaign")
	if !ok {
		return
	}

	var req model.CampaignConfig
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.CreateCampaign(r.Context(), playerID, &req)
	if err != nil {
		logger.Error("Failed to create campaign", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, profile, logger)
}

// exerciseIndexes は {day}/{exercise} のパスパラメータを読み取ります
func exerciseIndexes(r *http.Request) (int, int, error) {
	day, err := indexParam(r, "day")
	if err != nil {
		return 0, 0, err
	}
	exercise, err := indexParam(r, "exercise")
	if err != nil {
		return 0, 0, err
	}
	return day, exercise, nil
}

func (h *CampaignHandler) SwapExercise(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "SwapExercise")
	if !ok {
		return
	}

	day, exercise, err := exerciseIndexes(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SwapExerciseRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.SwapExercise(r.Context(), playerID, day, exercise, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

func (h *CampaignHandler) RateExercise(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "RateExercise")
	if !ok {
		return
	}

	day, exercise, err := exerciseIndexes(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.RateExerciseRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.RateExercise(r.Context(), playerID, day, exercise, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}
