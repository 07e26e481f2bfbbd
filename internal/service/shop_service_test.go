package service

import (
	"errors"
	"testing"

	"spellbound/internal/models"
)

func newTestShopService(t *testing.T) (*ShopService, *ProfileService, *models.ChildProfile) {
	t.Helper()
	profiles := newTestProfileService(t)
	child, err := profiles.CreateChild("Ben", models.Grade3)
	if err != nil {
		t.Fatalf("CreateChild failed: %v", err)
	}
	return NewShopService(profiles), profiles, child
}

func ownedItems(t *testing.T, profiles *ProfileService, childID string) []models.OwnedItem {
	t.Helper()
	items, err := profiles.OwnedItems(childID)
	if err != nil {
		t.Fatalf("OwnedItems failed: %v", err)
	}
	return items
}

func TestPurchaseIdempotent(t *testing.T) {
	shop, profiles, child := newTestShopService(t)

	// Party Hat: 75 coins, unlocks at level 2. Level the child up first.
	if err := profiles.ApplyReward(child.ID, -25, 100); err != nil {
		t.Fatalf("ApplyReward failed: %v", err)
	}
	// Child now has exactly 75 coins at level 2.
	if got := profiles.CurrentChild(); got.Coins != 75 || got.Level != 2 {
		t.Fatalf("setup coins/level = %d/%d, want 75/2", got.Coins, got.Level)
	}

	if err := shop.Purchase(child.ID, "hat"); err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}
	// A double-submitted purchase succeeds without charging again.
	if err := shop.Purchase(child.ID, "hat"); err != nil {
		t.Fatalf("repeat purchase failed: %v", err)
	}

	items := ownedItems(t, profiles, child.ID)
	if len(items) != 1 || items[0].ItemID != "hat" {
		t.Errorf("owned items = %+v, want exactly one hat", items)
	}
	if got := profiles.CurrentChild().Coins; got != 0 {
		t.Errorf("coins = %d, want 0 (charged exactly once)", got)
	}
}

func TestPurchaseRejections(t *testing.T) {
	shop, _, child := newTestShopService(t)

	if err := shop.Purchase(child.ID, "no-such-item"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown item error = %v", err)
	}
	// Royal Crown unlocks at level 3; a fresh child is level 1.
	if err := shop.Purchase(child.ID, "crown"); !errors.Is(err, ErrItemLocked) {
		t.Errorf("locked item error = %v", err)
	}
	// Study Desk is level 1 but costs 100; drain the wallet first.
	if err := shop.Purchase(child.ID, "glasses"); err != nil {
		t.Fatalf("setup purchase failed: %v", err)
	}
	if err := shop.Purchase(child.ID, "desk"); !errors.Is(err, ErrNotEnoughCoins) {
		t.Errorf("insufficient coins error = %v", err)
	}
	if err := shop.Purchase("missing-child", "glasses"); !errors.Is(err, ErrChildNotFound) {
		t.Errorf("missing child error = %v", err)
	}
}

func TestFailedPurchaseLeavesStateUntouched(t *testing.T) {
	shop, profiles, child := newTestShopService(t)

	before := profiles.CurrentChild().Coins
	if err := shop.Purchase(child.ID, "crown"); err == nil {
		t.Fatal("expected locked purchase to fail")
	}
	if got := profiles.CurrentChild().Coins; got != before {
		t.Errorf("coins changed on failed purchase: %d -> %d", before, got)
	}
	if items := ownedItems(t, profiles, child.ID); len(items) != 0 {
		t.Errorf("items granted on failed purchase: %+v", items)
	}
}

func TestToggleEquipSyncsAvatar(t *testing.T) {
	shop, profiles, child := newTestShopService(t)

	if err := shop.Purchase(child.ID, "glasses"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	equipped, err := shop.ToggleEquip(child.ID, "glasses")
	if err != nil || !equipped {
		t.Fatalf("ToggleEquip = %v, %v; want equipped", equipped, err)
	}
	accessories := profiles.CurrentChild().AvatarConfig.Accessories
	if len(accessories) != 1 || accessories[0] != "glasses" {
		t.Errorf("accessories = %v, want [glasses]", accessories)
	}

	equipped, err = shop.ToggleEquip(child.ID, "glasses")
	if err != nil || equipped {
		t.Fatalf("ToggleEquip = %v, %v; want unequipped", equipped, err)
	}
	if accessories := profiles.CurrentChild().AvatarConfig.Accessories; len(accessories) != 0 {
		t.Errorf("accessories = %v, want empty after unequip", accessories)
	}

	if _, err := shop.ToggleEquip(child.ID, "bow"); !errors.Is(err, ErrItemNotOwned) {
		t.Errorf("unowned equip error = %v", err)
	}
}

func TestEquipFurnitureDoesNotTouchAvatar(t *testing.T) {
	shop, profiles, child := newTestShopService(t)

	if err := shop.Purchase(child.ID, "teddy"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if _, err := shop.ToggleEquip(child.ID, "teddy"); err != nil {
		t.Fatalf("ToggleEquip failed: %v", err)
	}
	if accessories := profiles.CurrentChild().AvatarConfig.Accessories; len(accessories) != 0 {
		t.Errorf("room decor leaked into avatar accessories: %v", accessories)
	}
}

func TestUpdateRoomPlacements(t *testing.T) {
	shop, profiles, child := newTestShopService(t)

	for _, id := range []string{"teddy", "poster"} {
		if err := shop.Purchase(child.ID, id); err != nil {
			t.Fatalf("purchase %s failed: %v", id, err)
		}
	}

	placements := []models.ItemPlacement{
		{ItemID: "teddy", X: 200, Y: 250},
		{ItemID: "poster", X: 9999, Y: -50}, // out of bounds, gets clamped
	}
	if err := shop.UpdateRoomPlacements(child.ID, placements); err != nil {
		t.Fatalf("UpdateRoomPlacements failed: %v", err)
	}

	got, err := profiles.RoomPlacements(child.ID)
	if err != nil {
		t.Fatalf("RoomPlacements failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("placements = %d, want 2", len(got))
	}
	if got[0].X != 200 || got[0].Y != 250 {
		t.Errorf("in-bounds placement moved: %+v", got[0])
	}
	if got[1].X != 380 || got[1].Y != 40 {
		t.Errorf("wall placement = (%v, %v), want clamped to (380, 40)", got[1].X, got[1].Y)
	}
}

func TestUpdateRoomPlacementsRejections(t *testing.T) {
	shop, _, child := newTestShopService(t)

	err := shop.UpdateRoomPlacements(child.ID, []models.ItemPlacement{{ItemID: "teddy", X: 100, Y: 200}})
	if !errors.Is(err, ErrItemNotOwned) {
		t.Errorf("unowned placement error = %v", err)
	}

	// Avatar accessories never go in the room.
	if err := shop.Purchase(child.ID, "glasses"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	err = shop.UpdateRoomPlacements(child.ID, []models.ItemPlacement{{ItemID: "glasses", X: 100, Y: 200}})
	if !errors.Is(err, ErrNotPlaceable) {
		t.Errorf("accessory placement error = %v", err)
	}
}
