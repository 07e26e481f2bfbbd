package service

import (
	"bytes"
	"strings"
	"testing"

	"spellbound/internal/models"
)

func TestBackupRoundTrip(t *testing.T) {
	repo := newMemorySaveRepo()
	svc, err := NewProfileService(repo)
	if err != nil {
		t.Fatalf("NewProfileService failed: %v", err)
	}
	child, _ := svc.CreateChild("Ada", models.Grade4)
	if err := svc.SetParentPin("4321"); err != nil {
		t.Fatalf("SetParentPin failed: %v", err)
	}

	var buf bytes.Buffer
	backup := NewBackupService(repo)
	if err := backup.Export(&buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Import into a fresh store and verify the family comes back.
	fresh := newMemorySaveRepo()
	if err := NewBackupService(fresh).Import(&buf); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	restored, err := NewProfileService(fresh)
	if err != nil {
		t.Fatalf("NewProfileService after import failed: %v", err)
	}
	got := restored.CurrentChild()
	if got == nil || got.ID != child.ID || got.Name != "Ada" {
		t.Errorf("restored child = %+v", got)
	}
	if !restored.PinSet() || !restored.VerifyPin("4321") {
		t.Error("parent PIN should survive a backup round trip")
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	repo := newMemorySaveRepo()
	if err := NewBackupService(repo).Import(strings.NewReader("{broken")); err == nil {
		t.Error("malformed backup should fail to import")
	}
}

func TestImportClearsStaleSelection(t *testing.T) {
	repo := newMemorySaveRepo()
	doc := `{"childSaves":{},"currentChildId":"ghost"}`
	if err := NewBackupService(repo).Import(strings.NewReader(doc)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	id, err := repo.LoadCurrentChildID()
	if err != nil {
		t.Fatalf("LoadCurrentChildID failed: %v", err)
	}
	if id != "" {
		t.Errorf("stale selection %q should be cleared", id)
	}
}
