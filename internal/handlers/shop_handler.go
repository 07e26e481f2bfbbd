package handlers

import (
	"net/http"

	"spellbound/internal/models"
	"spellbound/internal/service"
)

// ShopHandler exposes the item catalog, purchases and the room over JSON.
type ShopHandler struct {
	shop     *service.ShopService
	profiles *service.ProfileService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shop *service.ShopService, profiles *service.ProfileService) *ShopHandler {
	return &ShopHandler{shop: shop, profiles: profiles}
}

// ListItems handles GET /api/shop/items
func (h *ShopHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.shop.Catalog())
}

// Purchase handles POST /api/shop/purchase
func (h *ShopHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChildID string `json:"childId"`
		ItemID  string `json:"itemId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.shop.Purchase(req.ChildID, req.ItemID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ToggleEquip handles POST /api/shop/equip
func (h *ShopHandler) ToggleEquip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChildID string `json:"childId"`
		ItemID  string `json:"itemId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	equipped, err := h.shop.ToggleEquip(req.ChildID, req.ItemID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"equipped": equipped})
}

// ListOwnedItems handles GET /api/children/{id}/items
func (h *ShopHandler) ListOwnedItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.profiles.OwnedItems(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// GetRoom handles GET /api/children/{id}/room
func (h *ShopHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	placements, err := h.profiles.RoomPlacements(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, placements)
}

// UpdateRoom handles PUT /api/children/{id}/room
func (h *ShopHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Placements []models.ItemPlacement `json:"placements"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.shop.UpdateRoomPlacements(r.PathValue("id"), req.Placements); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
