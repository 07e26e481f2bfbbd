package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"spellbound/internal/models"
)

// BackupDocument is the portable JSON form of the whole family save.
type BackupDocument struct {
	ExportedAt     time.Time                    `json:"exportedAt"`
	ParentPinHash  string                       `json:"parentPinHash,omitempty"`
	CurrentChildID string                       `json:"currentChildId,omitempty"`
	ChildSaves     map[string]*models.ChildSave `json:"childSaves"`
}

// BackupService exports and imports the family save state as JSON.
type BackupService struct {
	repo SaveRepository
}

// NewBackupService creates a new backup service
func NewBackupService(repo SaveRepository) *BackupService {
	return &BackupService{repo: repo}
}

// Export writes the full save state to w.
func (s *BackupService) Export(w io.Writer) error {
	pinHash, err := s.repo.LoadParentPin()
	if err != nil {
		return fmt.Errorf("failed to load parent pin: %w", err)
	}
	saves, err := s.repo.LoadChildSaves()
	if err != nil {
		return fmt.Errorf("failed to load child saves: %w", err)
	}
	currentID, err := s.repo.LoadCurrentChildID()
	if err != nil {
		return fmt.Errorf("failed to load current child id: %w", err)
	}

	doc := BackupDocument{
		ExportedAt:     time.Now(),
		ParentPinHash:  pinHash,
		CurrentChildID: currentID,
		ChildSaves:     saves,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Import replaces the save state with the contents of r.
func (s *BackupService) Import(r io.Reader) error {
	var doc BackupDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if doc.ChildSaves == nil {
		doc.ChildSaves = map[string]*models.ChildSave{}
	}

	if err := s.repo.SaveChildSaves(doc.ChildSaves); err != nil {
		return fmt.Errorf("failed to store child saves: %w", err)
	}
	if err := s.repo.SaveParentPin(doc.ParentPinHash); err != nil {
		return fmt.Errorf("failed to store parent pin: %w", err)
	}
	if _, ok := doc.ChildSaves[doc.CurrentChildID]; !ok {
		doc.CurrentChildID = ""
	}
	if err := s.repo.SaveCurrentChildID(doc.CurrentChildID); err != nil {
		return fmt.Errorf("failed to store current child id: %w", err)
	}
	return nil
}
