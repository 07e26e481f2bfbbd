package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"spellbound/internal/service"
	"spellbound/internal/utils"
)

// refusal is the body for an expected domain rejection: the request was
// well formed but the rules say no (not enough coins, profile cap, bad PIN).
type refusal struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondRefusal(w http.ResponseWriter, reason string) {
	respondJSON(w, http.StatusOK, refusal{OK: false, Reason: reason})
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}
	respondJSON(w, status, map[string]string{"error": userMsg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Failed to decode request", err)
		return false
	}
	return true
}

// respondServiceError routes a service error to the right response shape:
// validation problems are 400s, missing resources are 404s, domain
// rejections are refusals, everything else is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr utils.ValidationError
	if errors.As(err, &validationErr) {
		respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
		return
	}

	switch {
	case errors.Is(err, service.ErrChildNotFound),
		errors.Is(err, service.ErrSavedSetMissing),
		errors.Is(err, service.ErrUnknownItem):
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
	case errors.Is(err, service.ErrProfileLimit),
		errors.Is(err, service.ErrSavedListLimit),
		errors.Is(err, service.ErrCoinsBelowZero),
		errors.Is(err, service.ErrXPBelowZero),
		errors.Is(err, service.ErrItemLocked),
		errors.Is(err, service.ErrNotEnoughCoins),
		errors.Is(err, service.ErrItemNotOwned),
		errors.Is(err, service.ErrNotPlaceable),
		errors.Is(err, service.ErrNoActiveSession),
		errors.Is(err, service.ErrSessionCompleted),
		errors.Is(err, service.ErrEmptyWordSet),
		errors.Is(err, service.ErrNoCurrentChild),
		errors.Is(err, service.ErrInvalidGameMode),
		errors.Is(err, service.ErrNoCurrentWord):
		respondRefusal(w, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", "Request failed", err)
	}
}
