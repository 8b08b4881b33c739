package handler

import (
	"errors"
	"net/http"
	"strconv"

	"spinnergy/internal/api/middleware"
	"spinnergy/internal/api/util"
	"spinnergy/internal/core/service"
)

type GameHandler struct {
	game        service.GameService
	leaderboard service.LeaderboardService
}

func NewGameHandler(game service.GameService, leaderboard service.LeaderboardService) *GameHandler {
	return &GameHandler{
		game:        game,
		leaderboard: leaderboard,
	}
}

func (h *GameHandler) Spin(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		util.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	result, err := h.game.Spin(account.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSpinsLeft):
			util.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSpinFailed):
			util.WriteError(w, http.StatusInternalServerError, service.ErrSpinFailed.Error())
		default:
			util.WriteError(w, http.StatusInternalServerError, "Error resolving spin")
		}
		return
	}

	util.WriteJSON(w, http.StatusOK, result)
}

func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			util.WriteError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboard.Rank(limit)
	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, "Error loading leaderboard")
		return
	}

	util.WriteJSON(w, http.StatusOK, entries)
}

func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		util.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	history, err := h.game.History(account.ID)
	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, "Error loading history")
		return
	}

	util.WriteJSON(w, http.StatusOK, history)
}
