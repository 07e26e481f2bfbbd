package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"spellbound/internal/database"
	"spellbound/internal/models"
)

// Logical keys in the save_state table. The whole family save fits in three
// documents: the parent PIN hash, the per-child saves, and the pointer to
// the currently selected child.
const (
	keyParentPin      = "parent-pin"
	keyChildSaves     = "child-saves"
	keyCurrentChildID = "current-child-id"
)

// SaveRepo persists family save state as JSON documents under fixed keys.
// Dates travel as RFC 3339 strings (encoding/json's time.Time encoding).
// Unparsable documents degrade to empty defaults rather than failing: a
// corrupt save must never take the application down.
type SaveRepo struct {
	db *database.DB
}

// NewSaveRepo creates a new save repository
func NewSaveRepo(db *database.DB) *SaveRepo {
	return &SaveRepo{db: db}
}

// LoadParentPin returns the stored PIN hash, or "" when none has been set.
func (r *SaveRepo) LoadParentPin() (string, error) {
	value, ok, err := r.getValue(keyParentPin)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// SaveParentPin stores the PIN hash.
func (r *SaveRepo) SaveParentPin(hash string) error {
	return r.setValue(keyParentPin, hash)
}

// LoadChildSaves returns all per-child saves keyed by child id.
func (r *SaveRepo) LoadChildSaves() (map[string]*models.ChildSave, error) {
	value, ok, err := r.getValue(keyChildSaves)
	if err != nil {
		return nil, err
	}
	if !ok || value == "" {
		return map[string]*models.ChildSave{}, nil
	}

	var raw map[string]*models.ChildSave
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		log.Printf("Warning: child saves document is unparsable, starting from empty state: %v", err)
		return map[string]*models.ChildSave{}, nil
	}

	return reviveChildSaves(raw), nil
}

// SaveChildSaves stores all per-child saves.
func (r *SaveRepo) SaveChildSaves(saves map[string]*models.ChildSave) error {
	data, err := json.Marshal(saves)
	if err != nil {
		return fmt.Errorf("failed to encode child saves: %w", err)
	}
	return r.setValue(keyChildSaves, string(data))
}

// LoadCurrentChildID returns the selected child id, or "" when none.
func (r *SaveRepo) LoadCurrentChildID() (string, error) {
	value, ok, err := r.getValue(keyCurrentChildID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// SaveCurrentChildID stores the selected child id ("" clears it).
func (r *SaveRepo) SaveCurrentChildID(id string) error {
	return r.setValue(keyCurrentChildID, id)
}

// reviveChildSaves drops malformed entries and normalizes nil slices so the
// rest of the code never sees a partially formed save.
func reviveChildSaves(raw map[string]*models.ChildSave) map[string]*models.ChildSave {
	result := make(map[string]*models.ChildSave, len(raw))
	for id, save := range raw {
		if save == nil || save.Profile.ID == "" {
			log.Printf("Warning: dropping malformed child save entry %q", id)
			continue
		}
		if save.OwnedItems == nil {
			save.OwnedItems = []models.OwnedItem{}
		}
		if save.RoomPlacements == nil {
			save.RoomPlacements = []models.ItemPlacement{}
		}
		if save.SavedWordSets == nil {
			save.SavedWordSets = []models.SavedWordSet{}
		}
		if save.Profile.AvatarConfig.Accessories == nil {
			save.Profile.AvatarConfig.Accessories = []string{}
		}
		result[id] = save
	}
	return result
}

func (r *SaveRepo) getValue(key string) (string, bool, error) {
	var value string
	query := "SELECT state_value FROM save_state WHERE state_key = ?"
	err := r.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read save state %q: %w", key, err)
	}
	return value, true, nil
}

// setValue upserts via update-then-insert, which works identically across
// all three dialects.
func (r *SaveRepo) setValue(key, value string) error {
	result, err := r.db.Exec(
		"UPDATE save_state SET state_value = ?, updated_at = CURRENT_TIMESTAMP WHERE state_key = ?",
		value, key,
	)
	if err != nil {
		return fmt.Errorf("failed to update save state %q: %w", key, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check save state update %q: %w", key, err)
	}
	if rows > 0 {
		return nil
	}

	if _, err := r.db.Exec(
		"INSERT INTO save_state (state_key, state_value) VALUES (?, ?)",
		key, value,
	); err != nil {
		return fmt.Errorf("failed to insert save state %q: %w", key, err)
	}
	return nil
}
