package handlers

import (
	"net/http"

	"spellbound/internal/models"
	"spellbound/internal/service"
)

// GameHandler exposes the session lifecycle over JSON.
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// StartGame handles POST /api/game/start
func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode    models.GameMode `json:"mode"`
		WordSet models.WordSet  `json:"wordSet"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.games.Start(req.Mode, &req.WordSet)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// GetState handles GET /api/game/state
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.games.State()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// SubmitAnswer handles POST /api/game/answer
func (h *GameHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer string `json:"answer"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.games.SubmitAnswer(req.Answer)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// UseHint handles POST /api/game/hint
func (h *GameHandler) UseHint(w http.ResponseWriter, r *http.Request) {
	if err := h.games.UseHint(); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// NextWord handles POST /api/game/next
func (h *GameHandler) NextWord(w http.ResponseWriter, r *http.Request) {
	more, err := h.games.Advance()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"moreWords": more})
}

// FinishGame handles POST /api/game/finish
func (h *GameHandler) FinishGame(w http.ResponseWriter, r *http.Request) {
	session, err := h.games.Finalize()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// ExitGame handles POST /api/game/exit
func (h *GameHandler) ExitGame(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Exit(); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
