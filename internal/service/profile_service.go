package service

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"spellbound/internal/models"
	"spellbound/internal/utils"
)

const (
	// MaxChildProfiles caps the number of children in one family context.
	MaxChildProfiles = 5
	// MaxSavedWordSets caps saved word lists per child.
	MaxSavedWordSets = 10

	xpPerLevel    = 100
	startingCoins = 100
	parentID      = "parent-1"
)

var (
	ErrChildNotFound   = errors.New("child profile not found")
	ErrProfileLimit    = errors.New("child profile limit reached")
	ErrSavedListLimit  = errors.New("saved word list limit reached")
	ErrSavedSetMissing = errors.New("saved word set not found")
	ErrCoinsBelowZero  = errors.New("coin balance cannot go below zero")
	ErrXPBelowZero     = errors.New("xp total cannot go below zero")
)

// SaveRepository is the persistence boundary for family save state. The
// production implementation lives in internal/repository; tests substitute
// an in-memory one.
type SaveRepository interface {
	LoadParentPin() (string, error)
	SaveParentPin(hash string) error
	LoadChildSaves() (map[string]*models.ChildSave, error)
	SaveChildSaves(saves map[string]*models.ChildSave) error
	LoadCurrentChildID() (string, error)
	SaveCurrentChildID(id string) error
}

// ChildUpdate carries optional profile edits; nil fields are left unchanged.
type ChildUpdate struct {
	Name         *string
	Grade        *models.GradeLevel
	AvatarConfig *models.AvatarConfig
	Settings     *models.ChildSettings
}

// ProfileService owns all per-child persistent state: profiles, inventories,
// room layouts and saved word lists, plus the current-child pointer and the
// parent PIN gate. Every mutation is applied to the in-memory state and
// persisted as one step.
type ProfileService struct {
	repo SaveRepository

	mu        sync.Mutex
	pinHash   string
	saves     map[string]*models.ChildSave
	currentID string
}

// NewProfileService loads the family state from the repository. A corrupt or
// missing save degrades to empty state inside the repository, so this only
// fails on real storage errors.
func NewProfileService(repo SaveRepository) (*ProfileService, error) {
	pinHash, err := repo.LoadParentPin()
	if err != nil {
		return nil, err
	}
	saves, err := repo.LoadChildSaves()
	if err != nil {
		return nil, err
	}
	currentID, err := repo.LoadCurrentChildID()
	if err != nil {
		return nil, err
	}

	s := &ProfileService{
		repo:      repo,
		pinHash:   pinHash,
		saves:     saves,
		currentID: currentID,
	}
	// A stale pointer (deleted child) falls back to the oldest profile.
	if _, ok := s.saves[s.currentID]; !ok {
		s.currentID = s.oldestChildID()
	}
	return s, nil
}

// Profiles returns all child profiles, oldest first.
func (s *ProfileService) Profiles() []models.ChildProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := make([]models.ChildProfile, 0, len(s.saves))
	for _, save := range s.saves {
		profiles = append(profiles, save.Profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})
	return profiles
}

// CurrentChild returns a copy of the selected child's profile, or nil when
// no child is selected.
func (s *ProfileService) CurrentChild() *models.ChildProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	save, ok := s.saves[s.currentID]
	if !ok {
		return nil
	}
	profile := save.Profile
	return &profile
}

// CreateChild adds a new profile and selects it. Fails with ErrProfileLimit
// once the family holds MaxChildProfiles children.
func (s *ProfileService) CreateChild(name string, grade models.GradeLevel) (*models.ChildProfile, error) {
	if err := utils.ValidateChildName(name); err != nil {
		return nil, err
	}
	if grade == "" {
		grade = models.Grade1
	}
	if !grade.Valid() {
		return nil, utils.ValidationError{Field: "grade", Message: "unknown grade level"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.saves) >= MaxChildProfiles {
		return nil, ErrProfileLimit
	}

	profile := models.ChildProfile{
		ID:           utils.NewID("child"),
		ParentID:     parentID,
		Name:         strings.TrimSpace(name),
		Grade:        grade,
		AvatarConfig: defaultAvatarConfig(),
		XP:           0,
		Level:        levelForXP(0),
		Coins:        startingCoins,
		CreatedAt:    time.Now(),
		Settings:     defaultChildSettings(),
	}
	s.saves[profile.ID] = &models.ChildSave{
		Profile:        profile,
		OwnedItems:     []models.OwnedItem{},
		RoomPlacements: []models.ItemPlacement{},
		SavedWordSets:  []models.SavedWordSet{},
	}
	s.currentID = profile.ID

	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateChild applies profile edits.
func (s *ProfileService) UpdateChild(childID string, update ChildUpdate) error {
	if update.Name != nil {
		if err := utils.ValidateChildName(*update.Name); err != nil {
			return err
		}
	}
	if update.Grade != nil && !update.Grade.Valid() {
		return utils.ValidationError{Field: "grade", Message: "unknown grade level"}
	}

	return s.mutateChild(childID, func(save *models.ChildSave) error {
		if update.Name != nil {
			save.Profile.Name = strings.TrimSpace(*update.Name)
		}
		if update.Grade != nil {
			save.Profile.Grade = *update.Grade
		}
		if update.AvatarConfig != nil {
			save.Profile.AvatarConfig = *update.AvatarConfig
		}
		if update.Settings != nil {
			save.Profile.Settings = *update.Settings
		}
		return nil
	})
}

// DeleteChild removes a profile and everything it owns. Deleting the
// selected child re-selects the oldest remaining profile (or none).
func (s *ProfileService) DeleteChild(childID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.saves[childID]; !ok {
		return ErrChildNotFound
	}
	delete(s.saves, childID)

	if s.currentID == childID {
		s.currentID = s.oldestChildID()
	}
	return s.persistLocked()
}

// SelectChild switches the current-child pointer.
func (s *ProfileService) SelectChild(childID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.saves[childID]; !ok {
		return ErrChildNotFound
	}
	s.currentID = childID
	return s.repo.SaveCurrentChildID(s.currentID)
}

// ApplyReward adds coins and xp to a child and recomputes the level. A delta
// that would push coins or xp below zero is rejected outright so a failed
// debit never half-applies.
func (s *ProfileService) ApplyReward(childID string, coinsDelta, xpDelta int) error {
	return s.mutateChild(childID, func(save *models.ChildSave) error {
		if save.Profile.Coins+coinsDelta < 0 {
			return ErrCoinsBelowZero
		}
		if save.Profile.XP+xpDelta < 0 {
			return ErrXPBelowZero
		}
		save.Profile.Coins += coinsDelta
		save.Profile.XP += xpDelta
		save.Profile.Level = levelForXP(save.Profile.XP)
		return nil
	})
}

// SetParentPin sets (or replaces) the parent PIN. Only the bcrypt hash is
// ever persisted.
func (s *ProfileService) SetParentPin(pin string) error {
	if err := utils.ValidatePin(pin); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(pin)), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pinHash = string(hash)
	return s.repo.SaveParentPin(s.pinHash)
}

// PinSet reports whether a parent PIN has ever been set.
func (s *ProfileService) PinSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pinHash != ""
}

// VerifyPin checks a candidate PIN. While no PIN has been set the gate is
// open and every candidate verifies.
func (s *ProfileService) VerifyPin(candidate string) bool {
	s.mu.Lock()
	hash := s.pinHash
	s.mu.Unlock()

	if hash == "" {
		return true
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(candidate)))
	return err == nil
}

// OwnedItems returns a copy of a child's inventory.
func (s *ProfileService) OwnedItems(childID string) ([]models.OwnedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	save, ok := s.saves[childID]
	if !ok {
		return nil, ErrChildNotFound
	}
	items := make([]models.OwnedItem, len(save.OwnedItems))
	copy(items, save.OwnedItems)
	return items, nil
}

// RoomPlacements returns a copy of a child's room layout.
func (s *ProfileService) RoomPlacements(childID string) ([]models.ItemPlacement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	save, ok := s.saves[childID]
	if !ok {
		return nil, ErrChildNotFound
	}
	placements := make([]models.ItemPlacement, len(save.RoomPlacements))
	copy(placements, save.RoomPlacements)
	return placements, nil
}

// SaveWordSetForChild snapshots a word set under a name, newest first.
// Fails with ErrSavedListLimit at MaxSavedWordSets lists.
func (s *ProfileService) SaveWordSetForChild(childID, name string, set *models.WordSet) (*models.SavedWordSet, error) {
	if err := utils.ValidateListName(name); err != nil {
		return nil, err
	}

	var saved models.SavedWordSet
	err := s.mutateChild(childID, func(save *models.ChildSave) error {
		if len(save.SavedWordSets) >= MaxSavedWordSets {
			return ErrSavedListLimit
		}
		words := make([]models.Word, len(set.Words))
		copy(words, set.Words)
		saved = models.SavedWordSet{
			ID:        utils.NewID("saved"),
			Name:      strings.TrimSpace(name),
			Grade:     set.Grade,
			Words:     words,
			CreatedAt: time.Now(),
		}
		save.SavedWordSets = append([]models.SavedWordSet{saved}, save.SavedWordSets...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// SavedWordSets returns a child's saved lists, newest first.
func (s *ProfileService) SavedWordSets(childID string) ([]models.SavedWordSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	save, ok := s.saves[childID]
	if !ok {
		return nil, ErrChildNotFound
	}
	sets := make([]models.SavedWordSet, len(save.SavedWordSets))
	copy(sets, save.SavedWordSets)
	return sets, nil
}

// LoadSavedWordSet rebuilds a playable word set from a saved snapshot.
func (s *ProfileService) LoadSavedWordSet(childID, savedSetID string) (*models.WordSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	save, ok := s.saves[childID]
	if !ok {
		return nil, ErrChildNotFound
	}
	for _, saved := range save.SavedWordSets {
		if saved.ID == savedSetID {
			words := make([]models.Word, len(saved.Words))
			copy(words, saved.Words)
			return &models.WordSet{
				ID:        saved.ID,
				Name:      saved.Name,
				Kind:      models.WordSetSaved,
				Grade:     saved.Grade,
				Words:     words,
				CreatedAt: time.Now(),
			}, nil
		}
	}
	return nil, ErrSavedSetMissing
}

// DeleteSavedWordSet removes a saved list.
func (s *ProfileService) DeleteSavedWordSet(childID, savedSetID string) error {
	return s.mutateChild(childID, func(save *models.ChildSave) error {
		for i, saved := range save.SavedWordSets {
			if saved.ID == savedSetID {
				save.SavedWordSets = append(save.SavedWordSets[:i], save.SavedWordSets[i+1:]...)
				return nil
			}
		}
		return ErrSavedSetMissing
	})
}

// mutateChild applies fn to one child's save as a single read-modify-write
// step and persists the result. The save is left untouched when fn fails.
func (s *ProfileService) mutateChild(childID string, fn func(save *models.ChildSave) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	save, ok := s.saves[childID]
	if !ok {
		return ErrChildNotFound
	}
	copied := cloneChildSave(save)
	if err := fn(copied); err != nil {
		return err
	}
	s.saves[childID] = copied
	return s.persistLocked()
}

func (s *ProfileService) persistLocked() error {
	if err := s.repo.SaveChildSaves(s.saves); err != nil {
		return err
	}
	return s.repo.SaveCurrentChildID(s.currentID)
}

func (s *ProfileService) oldestChildID() string {
	oldest := ""
	var oldestAt time.Time
	for id, save := range s.saves {
		if oldest == "" || save.Profile.CreatedAt.Before(oldestAt) {
			oldest = id
			oldestAt = save.Profile.CreatedAt
		}
	}
	return oldest
}

// levelForXP derives the level from total xp: 100 xp per level, starting at 1.
func levelForXP(xp int) int {
	return xp/xpPerLevel + 1
}

func cloneChildSave(save *models.ChildSave) *models.ChildSave {
	copied := *save
	copied.Profile.AvatarConfig.Accessories = append([]string{}, save.Profile.AvatarConfig.Accessories...)
	copied.OwnedItems = append([]models.OwnedItem{}, save.OwnedItems...)
	copied.RoomPlacements = append([]models.ItemPlacement{}, save.RoomPlacements...)
	copied.SavedWordSets = append([]models.SavedWordSet{}, save.SavedWordSets...)
	return &copied
}

func defaultAvatarConfig() models.AvatarConfig {
	return models.AvatarConfig{
		Gender:      "male",
		SkinTone:    "#FFDBB4",
		HairStyle:   "short",
		HairColor:   "#4A3728",
		EyeShape:    "round",
		EyeColor:    "#4A3728",
		NoseShape:   "small",
		MouthShape:  "smile",
		HeadShape:   "round",
		BodyType:    "normal",
		Shirt:       "tshirt",
		ShirtColor:  "#4ECDC4",
		Pants:       "jeans",
		PantsColor:  "#3B5998",
		Shoes:       "sneakers",
		ShoesColor:  "#FFFFFF",
		Accessories: []string{},
	}
}

func defaultChildSettings() models.ChildSettings {
	return models.ChildSettings{
		DailyGoalMinutes: 15,
		DyslexiaFont:     false,
		LargerText:       false,
		ReduceMotion:     false,
	}
}
