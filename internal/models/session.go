package models

import "time"

// GameMode tags which mini-game a session was played in. The session
// controller treats every mode identically; the mode only matters to the
// presentation layer.
type GameMode string

const (
	ModeHearAndType    GameMode = "hear-and-type"
	ModeMissingLetters GameMode = "missing-letters"
	ModeWordScramble   GameMode = "word-scramble"
	ModeMultipleChoice GameMode = "multiple-choice"
	ModeAudioMatch     GameMode = "audio-match"
	ModeWordSearch     GameMode = "word-search"
	ModePracticeLadder GameMode = "practice-ladder"
	ModePointingFinger GameMode = "pointing-finger"
)

// Valid reports whether m is a known game mode.
func (m GameMode) Valid() bool {
	switch m {
	case ModeHearAndType, ModeMissingLetters, ModeWordScramble, ModeMultipleChoice,
		ModeAudioMatch, ModeWordSearch, ModePracticeLadder, ModePointingFinger:
		return true
	}
	return false
}

// WordAttempt is the final record for one word in a session. Exactly one
// record exists per distinct word (upsert, not append); it reflects the
// final correctness determination for that word.
type WordAttempt struct {
	WordID       string `json:"wordId"`
	WordText     string `json:"wordText"`
	AttemptCount int    `json:"attemptCount"`
	Correct      bool   `json:"correct"`
	HintsUsed    int    `json:"hintsUsed"`
	AnswerGiven  string `json:"answerGiven"`
}

// GameSession is one play-through of a word set. It is created at start,
// mutated only by the game service, and finalized exactly once.
type GameSession struct {
	ID          string        `json:"id"`
	ChildID     string        `json:"childId"`
	WordSetID   string        `json:"wordSetId"`
	Mode        GameMode      `json:"mode"`
	StartedAt   time.Time     `json:"startedAt"`
	EndedAt     *time.Time    `json:"endedAt,omitempty"`
	TotalWords  int           `json:"totalWords"`
	Score       int           `json:"score"`
	Accuracy    float64       `json:"accuracy"` // 0-100
	CoinsEarned int           `json:"coinsEarned"`
	XPEarned    int           `json:"xpEarned"`
	Attempts    []WordAttempt `json:"attempts"`
}
