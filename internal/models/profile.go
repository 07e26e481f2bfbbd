package models

import "time"

// AvatarConfig holds a child's avatar customization choices.
type AvatarConfig struct {
	Gender      string   `json:"gender"`
	SkinTone    string   `json:"skinTone"`
	HairStyle   string   `json:"hairStyle"`
	HairColor   string   `json:"hairColor"`
	EyeShape    string   `json:"eyeShape"`
	EyeColor    string   `json:"eyeColor"`
	NoseShape   string   `json:"noseShape"`
	MouthShape  string   `json:"mouthShape"`
	HeadShape   string   `json:"headShape"`
	BodyType    string   `json:"bodyType"`
	Shirt       string   `json:"shirt"`
	ShirtColor  string   `json:"shirtColor"`
	Pants       string   `json:"pants"`
	PantsColor  string   `json:"pantsColor"`
	Shoes       string   `json:"shoes"`
	ShoesColor  string   `json:"shoesColor"`
	Accessories []string `json:"accessories"`
}

// ChildSettings holds per-child accessibility and goal settings.
type ChildSettings struct {
	DailyGoalMinutes int  `json:"dailyGoalMinutes"`
	DyslexiaFont     bool `json:"dyslexiaFont"`
	LargerText       bool `json:"largerText"`
	ReduceMotion     bool `json:"reduceMotion"`
}

// ChildProfile represents a child in the family. Level is always derived
// from XP (100 XP per level) and is never updated independently.
type ChildProfile struct {
	ID           string        `json:"id"`
	ParentID     string        `json:"parentId"`
	Name         string        `json:"name"`
	Grade        GradeLevel    `json:"grade"`
	AvatarConfig AvatarConfig  `json:"avatarConfig"`
	XP           int           `json:"xp"`
	Level        int           `json:"level"`
	Coins        int           `json:"coins"`
	CreatedAt    time.Time     `json:"createdAt"`
	Settings     ChildSettings `json:"settings"`
}

// OwnedItem records a shop item a child owns; unique per (child, item).
type OwnedItem struct {
	ItemID     string    `json:"itemId"`
	Equipped   bool      `json:"equipped"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

// ItemPlacement positions an owned item in the child's room.
type ItemPlacement struct {
	ItemID   string  `json:"itemId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Layer    int     `json:"layer"`
}

// ChildSave is the complete persisted state for one child: profile,
// inventory, room layout and saved word lists.
type ChildSave struct {
	Profile        ChildProfile    `json:"profile"`
	OwnedItems     []OwnedItem     `json:"ownedItems"`
	RoomPlacements []ItemPlacement `json:"roomPlacements"`
	SavedWordSets  []SavedWordSet  `json:"savedWordSets"`
}
