package handlers

import (
	"log"
	"net/http"

	"spellbound/internal/utils"
)

// SpeechHandler serves word pronunciation audio. Generation failures are
// reported as spoken=false rather than errors; games keep working silently.
type SpeechHandler struct {
	tts *utils.TTSService
}

// NewSpeechHandler creates a new speech handler
func NewSpeechHandler(tts *utils.TTSService) *SpeechHandler {
	return &SpeechHandler{tts: tts}
}

// Speak handles POST /api/speak
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := utils.ValidateWordText(req.Text); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	filename, err := h.tts.GenerateAudioFile(req.Text)
	if err != nil {
		log.Printf("Warning: failed to generate audio for %q: %v", req.Text, err)
		respondJSON(w, http.StatusOK, map[string]any{"spoken": false})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"spoken": true,
		"url":    "/static/audio/" + filename,
	})
}
