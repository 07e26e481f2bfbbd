package handlers

import (
	"net/http"

	"spellbound/internal/models"
	"spellbound/internal/names"
	"spellbound/internal/service"
)

// ProfileHandler exposes family profile management over JSON.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// ListChildren handles GET /api/family/children
func (h *ProfileHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profiles.Profiles())
}

// CreateChild handles POST /api/family/children
func (h *ProfileHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string            `json:"name"`
		Grade models.GradeLevel `json:"grade"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	child, err := h.profiles.CreateChild(req.Name, req.Grade)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, child)
}

// UpdateChild handles POST /api/family/children/{id}/update
func (h *ProfileHandler) UpdateChild(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string               `json:"name"`
		Grade        *models.GradeLevel    `json:"grade"`
		AvatarConfig *models.AvatarConfig  `json:"avatarConfig"`
		Settings     *models.ChildSettings `json:"settings"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.profiles.UpdateChild(r.PathValue("id"), service.ChildUpdate{
		Name:         req.Name,
		Grade:        req.Grade,
		AvatarConfig: req.AvatarConfig,
		Settings:     req.Settings,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// DeleteChild handles POST /api/family/children/{id}/delete
func (h *ProfileHandler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.DeleteChild(r.PathValue("id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// SelectChild handles POST /api/family/children/{id}/select
func (h *ProfileHandler) SelectChild(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.SelectChild(r.PathValue("id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetCurrentChild handles GET /api/family/current
func (h *ProfileHandler) GetCurrentChild(w http.ResponseWriter, r *http.Request) {
	child := h.profiles.CurrentChild()
	if child == nil {
		respondRefusal(w, "no child selected")
		return
	}
	respondJSON(w, http.StatusOK, child)
}

// SuggestName handles GET /api/family/children/suggest-name
func (h *ProfileHandler) SuggestName(w http.ResponseWriter, r *http.Request) {
	name, err := names.SuggestDisplayName()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", "Failed to suggest name", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": name})
}

// GetPinStatus handles GET /api/family/pin
func (h *ProfileHandler) GetPinStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"set": h.profiles.PinSet()})
}

// SetPin handles POST /api/family/pin
func (h *ProfileHandler) SetPin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pin string `json:"pin"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.profiles.SetParentPin(req.Pin); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// VerifyPin handles POST /api/family/pin/verify
func (h *ProfileHandler) VerifyPin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pin string `json:"pin"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"valid": h.profiles.VerifyPin(req.Pin)})
}
