package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/service"
	"go_titan_quest/internal/webutil"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

// Onboard はキャラクターを作成し、プレイヤーIDとアクセストークンを返します
func (h *ProfileHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Onboard"))

	var req model.OnboardingRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid onboarding request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Onboard(r.Context(), &req)
	if err != nil {
		logger.Error("Onboarding failed in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Player onboarded successfully", slog.String("player_id", resp.PlayerID))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// PreviewClass は ?age=N からクラスを判定します
func (h *ProfileHandler) PreviewClass(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PreviewClass"))

	ageStr := r.URL.Query().Get("age")
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		logger.Warn("Invalid age query parameter", slog.String("age", ageStr))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "ageは整数で指定してください。", "age", model.ErrInvalidInput))
		return
	}

	resp, err := h.service.PreviewClass(age)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "GetProfile")
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), playerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// ResetJourney はプロフィールと全プランを削除します
func (h *ProfileHandler) ResetJourney(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "ResetJourney")
	if !ok {
		return
	}

	if err := h.service.ResetJourney(r.Context(), playerID); err != nil {
		logger.Error("Failed to reset journey", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Journey reset successfully")
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "UpdateSettings")
	if !ok {
		return
	}

	var req model.UpdateSettingsRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.UpdateSettings(r.Context(), playerID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

func (h *ProfileHandler) UpdateTrainingStyle(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "UpdateTrainingStyle")
	if !ok {
		return
	}

	var req model.UpdateTrainingStyleRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.UpdateTrainingStyle(r.Context(), playerID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Training style updated", slog.String("training_style", string(profile.TrainingStyle)))
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// UpdateFaction は勢力を変更します。新しい勢力のクエストは翌日のプランから出る。
func (h *ProfileHandler) UpdateFaction(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "UpdateFaction")
	if !ok {
		return
	}

	var req model.UpdateFactionRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.UpdateFaction(r.Context(), playerID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Faction updated", slog.String("faction", string(profile.Faction)))
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

func (h *ProfileHandler) LogWeight(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "LogWeight")
	if !ok {
		return
	}

	var req model.LogWeightRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.LogWeight(r.Context(), playerID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, profile, logger)
}
