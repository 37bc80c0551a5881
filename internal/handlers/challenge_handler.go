package handlers

import (
	"log/slog"
	"net/http"

	"go_titan_quest/internal/model"
	"go_titan_quest/internal/service"
	"go_titan_quest/internal/webutil"
)

type ChallengeHandler struct {
	service service.ChallengeService
}

func NewChallengeHandler(s service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{service: s}
}

// Summon はボス戦を召喚します (保存はしない)
func (h *ChallengeHandler) Summon(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "SummonChallenge")
	if !ok {
		return
	}

	challenge, err := h.service.Summon(r.Context(), playerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, challenge, logger)
}

func (h *ChallengeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	playerID, logger, ok := requirePlayer(w, r, "ResolveChallenge")
	if !ok {
		return
	}

	var req model.ResolveChallengeRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Resolve(r.Context(), playerID, &req)
	if err != nil {
		logger.Error("Failed to resolve challenge", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
