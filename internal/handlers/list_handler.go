package handlers

import (
	"log"
	"net/http"

	"spellbound/internal/models"
	"spellbound/internal/service"
	"spellbound/internal/utils"
	"spellbound/internal/wordbank"
)

// ListHandler exposes word set building and saved lists over JSON.
type ListHandler struct {
	bank     *wordbank.Bank
	profiles *service.ProfileService
	tts      *utils.TTSService
}

// NewListHandler creates a new list handler
func NewListHandler(bank *wordbank.Bank, profiles *service.ProfileService, tts *utils.TTSService) *ListHandler {
	return &ListHandler{bank: bank, profiles: profiles, tts: tts}
}

type filtersRequest struct {
	PhonicsPatterns []string `json:"phonicsPatterns"`
	MinLength       int      `json:"minLength"`
	MaxLength       int      `json:"maxLength"`
}

func (f *filtersRequest) toFilters() *wordbank.Filters {
	if f == nil {
		return nil
	}
	return &wordbank.Filters{
		PhonicsPatterns: f.PhonicsPatterns,
		MinLength:       f.MinLength,
		MaxLength:       f.MaxLength,
	}
}

// CreateRandomSet handles POST /api/lists/random
func (h *ListHandler) CreateRandomSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade   models.GradeLevel `json:"grade"`
		Count   int               `json:"count"`
		Name    string            `json:"name"`
		Filters *filtersRequest   `json:"filters"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Grade.Valid() {
		respondWithError(w, http.StatusBadRequest, "grade: unknown grade level", "", nil)
		return
	}
	if req.Count <= 0 {
		req.Count = 10
	}

	set := h.bank.NewRandomSet(req.Grade, req.Count, req.Filters.toFilters(), req.Name)
	if len(set.Words) == 0 {
		respondRefusal(w, "no words match the requested filters")
		return
	}
	respondJSON(w, http.StatusOK, set)
}

// RerollWords handles POST /api/lists/reroll
func (h *ListHandler) RerollWords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade   models.GradeLevel `json:"grade"`
		Count   int               `json:"count"`
		Filters *filtersRequest   `json:"filters"`
		Exclude []string          `json:"exclude"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Grade.Valid() {
		respondWithError(w, http.StatusBadRequest, "grade: unknown grade level", "", nil)
		return
	}

	words := h.bank.RerollWords(req.Grade, req.Count, req.Filters.toFilters(), req.Exclude)
	respondJSON(w, http.StatusOK, words)
}

// AddCustomWord handles POST /api/words/custom
func (h *ListHandler) AddCustomWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text            string            `json:"text"`
		Grade           models.GradeLevel `json:"grade"`
		Difficulty      int               `json:"difficulty"`
		Definition      string            `json:"definition"`
		ExampleSentence string            `json:"exampleSentence"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	word, err := h.bank.AddCustomWord(req.Text, req.Grade, req.Difficulty, req.Definition, req.ExampleSentence)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Pre-generate pronunciation audio; the word is still usable without it.
	if h.tts != nil {
		if _, err := h.tts.GenerateAudioFile(word.Text); err != nil {
			log.Printf("Warning: failed to generate audio for %q: %v", word.Text, err)
		}
	}

	respondJSON(w, http.StatusCreated, word)
}

// CreateCustomSet handles POST /api/lists/custom
func (h *ListHandler) CreateCustomSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string            `json:"name"`
		Grade models.GradeLevel `json:"grade"`
		Words []models.Word     `json:"words"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	set, err := wordbank.NewCustomSet(req.Name, req.Grade, req.Words)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, set)
}

// ListSavedSets handles GET /api/children/{id}/lists
func (h *ListHandler) ListSavedSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.profiles.SavedWordSets(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sets)
}

// SaveSet handles POST /api/children/{id}/lists
func (h *ListHandler) SaveSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string         `json:"name"`
		WordSet models.WordSet `json:"wordSet"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	saved, err := h.profiles.SaveWordSetForChild(r.PathValue("id"), req.Name, &req.WordSet)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// LoadSavedSet handles POST /api/children/{id}/lists/{setId}/load
func (h *ListHandler) LoadSavedSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.profiles.LoadSavedWordSet(r.PathValue("id"), r.PathValue("setId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, set)
}

// DeleteSavedSet handles POST /api/children/{id}/lists/{setId}/delete
func (h *ListHandler) DeleteSavedSet(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.DeleteSavedWordSet(r.PathValue("id"), r.PathValue("setId")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
