package repository

import (
	"path/filepath"
	"testing"
	"time"

	"spellbound/internal/database"
	"spellbound/internal/models"
)

func newTestRepo(t *testing.T) *SaveRepo {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return NewSaveRepo(db)
}

func TestParentPinRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	pin, err := repo.LoadParentPin()
	if err != nil {
		t.Fatalf("LoadParentPin failed: %v", err)
	}
	if pin != "" {
		t.Errorf("fresh store pin = %q, want empty", pin)
	}

	if err := repo.SaveParentPin("hash-1"); err != nil {
		t.Fatalf("SaveParentPin failed: %v", err)
	}
	// Second save exercises the update path of the upsert.
	if err := repo.SaveParentPin("hash-2"); err != nil {
		t.Fatalf("SaveParentPin failed: %v", err)
	}

	pin, err = repo.LoadParentPin()
	if err != nil {
		t.Fatalf("LoadParentPin failed: %v", err)
	}
	if pin != "hash-2" {
		t.Errorf("pin = %q, want hash-2", pin)
	}
}

func TestChildSavesRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	saves := map[string]*models.ChildSave{
		"child-1": {
			Profile: models.ChildProfile{
				ID:        "child-1",
				ParentID:  "parent-1",
				Name:      "Mila",
				Grade:     models.Grade2,
				XP:        120,
				Level:     2,
				Coins:     80,
				CreatedAt: time.Now().Truncate(time.Second),
			},
			OwnedItems:     []models.OwnedItem{{ItemID: "hat", Equipped: true, AcquiredAt: time.Now()}},
			RoomPlacements: []models.ItemPlacement{},
			SavedWordSets:  []models.SavedWordSet{},
		},
	}
	if err := repo.SaveChildSaves(saves); err != nil {
		t.Fatalf("SaveChildSaves failed: %v", err)
	}

	loaded, err := repo.LoadChildSaves()
	if err != nil {
		t.Fatalf("LoadChildSaves failed: %v", err)
	}
	save, ok := loaded["child-1"]
	if !ok {
		t.Fatal("child-1 missing after round trip")
	}
	if save.Profile.Name != "Mila" || save.Profile.Coins != 80 {
		t.Errorf("profile = %+v", save.Profile)
	}
	if len(save.OwnedItems) != 1 || save.OwnedItems[0].ItemID != "hat" {
		t.Errorf("owned items = %+v", save.OwnedItems)
	}
}

func TestCorruptSavesDegradeToEmpty(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.setValue(keyChildSaves, "{definitely not json"); err != nil {
		t.Fatalf("setValue failed: %v", err)
	}
	loaded, err := repo.LoadChildSaves()
	if err != nil {
		t.Fatalf("LoadChildSaves should not fail on corrupt data: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("corrupt saves = %+v, want empty map", loaded)
	}
}

func TestMalformedEntriesDropped(t *testing.T) {
	repo := newTestRepo(t)

	// An entry without a profile id is a broken save; it must be skipped
	// while healthy entries survive.
	doc := `{
		"broken": {"profile": {"id": ""}},
		"child-1": {"profile": {"id": "child-1", "name": "Iris", "grade": "3"}}
	}`
	if err := repo.setValue(keyChildSaves, doc); err != nil {
		t.Fatalf("setValue failed: %v", err)
	}

	loaded, err := repo.LoadChildSaves()
	if err != nil {
		t.Fatalf("LoadChildSaves failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d entries, want 1", len(loaded))
	}
	save := loaded["child-1"]
	if save == nil {
		t.Fatal("healthy entry dropped")
	}
	// Nil slices are normalized so callers never see partial saves.
	if save.OwnedItems == nil || save.RoomPlacements == nil || save.SavedWordSets == nil {
		t.Error("nil slices should be normalized to empty")
	}
}

func TestCurrentChildIDRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	id, err := repo.LoadCurrentChildID()
	if err != nil || id != "" {
		t.Fatalf("fresh store id = %q, err %v", id, err)
	}

	if err := repo.SaveCurrentChildID("child-9"); err != nil {
		t.Fatalf("SaveCurrentChildID failed: %v", err)
	}
	id, err = repo.LoadCurrentChildID()
	if err != nil || id != "child-9" {
		t.Errorf("id = %q, err %v, want child-9", id, err)
	}

	// Clearing the selection stores the empty string.
	if err := repo.SaveCurrentChildID(""); err != nil {
		t.Fatalf("SaveCurrentChildID failed: %v", err)
	}
	id, _ = repo.LoadCurrentChildID()
	if id != "" {
		t.Errorf("cleared id = %q, want empty", id)
	}
}
