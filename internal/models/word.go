package models

import "time"

// GradeLevel identifies a school grade, kindergarten through fifth.
type GradeLevel string

const (
	GradeK GradeLevel = "K"
	Grade1 GradeLevel = "1"
	Grade2 GradeLevel = "2"
	Grade3 GradeLevel = "3"
	Grade4 GradeLevel = "4"
	Grade5 GradeLevel = "5"
)

// Valid reports whether g is a known grade level.
func (g GradeLevel) Valid() bool {
	switch g {
	case GradeK, Grade1, Grade2, Grade3, Grade4, Grade5:
		return true
	}
	return false
}

// Label returns a display name for the grade.
func (g GradeLevel) Label() string {
	if g == GradeK {
		return "Kindergarten"
	}
	return "Grade " + string(g)
}

// Word is a single spelling-catalog entry. Words are immutable once created;
// parent-added custom words share this shape.
type Word struct {
	ID              string     `json:"id"`
	Text            string     `json:"text"`
	Grade           GradeLevel `json:"grade"`
	Length          int        `json:"length"`
	Syllables       int        `json:"syllables"`
	PhonicsPatterns []string   `json:"phonicsPatterns"`
	IsSightWord     bool       `json:"isSightWord"`
	Difficulty      int        `json:"difficulty"` // 1-5 scale
	Definition      string     `json:"definition,omitempty"`
	ExampleSentence string     `json:"exampleSentence,omitempty"`
}

// WordSetKind describes how a word set came to exist.
type WordSetKind string

const (
	WordSetRandom WordSetKind = "random"
	WordSetCustom WordSetKind = "custom"
	WordSetSaved  WordSetKind = "saved"
)

// WordSet is an ordered list of words played through in one session.
// Word texts within a set are unique (case-insensitive).
type WordSet struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Kind      WordSetKind `json:"kind"`
	Grade     GradeLevel  `json:"grade"`
	Words     []Word      `json:"words"`
	CreatedAt time.Time   `json:"createdAt"`
}

// SavedWordSet is a named, persisted snapshot of a word set's word list.
type SavedWordSet struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Grade     GradeLevel `json:"grade"`
	Words     []Word     `json:"words"`
	CreatedAt time.Time  `json:"createdAt"`
}
