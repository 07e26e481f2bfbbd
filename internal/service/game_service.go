package service

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"spellbound/internal/models"
	"spellbound/internal/utils"
)

var (
	ErrNoActiveSession  = errors.New("no active game session")
	ErrSessionCompleted = errors.New("game session already completed")
	ErrEmptyWordSet     = errors.New("word set has no words")
	ErrNoCurrentChild   = errors.New("no child profile selected")
	ErrInvalidGameMode  = errors.New("unknown game mode")
	ErrNoCurrentWord    = errors.New("no current word to answer")
)

// AnswerResult is what the presentation layer needs after one submission.
type AnswerResult struct {
	Correct      bool `json:"correct"`
	RevealAnswer bool `json:"revealAnswer"`
	Attempts     int  `json:"attempts"`
}

// GameState is a read-only snapshot of the running session.
type GameState struct {
	Session      models.GameSession `json:"session"`
	CurrentIndex int                `json:"currentIndex"`
	CurrentWord  *models.Word       `json:"currentWord,omitempty"`
	Revealed     bool               `json:"revealed"`
}

// GameService runs one game session at a time: it walks the word set in
// order, scores answers under the two-strike policy, keeps exactly one
// attempt record per word, and pays out rewards once at finalization.
type GameService struct {
	profiles *ProfileService

	mu           sync.Mutex
	session      *models.GameSession
	wordSet      *models.WordSet
	currentIndex int
	revealed     bool
	attempts     map[string]models.WordAttempt
	hints        map[string]int
}

// NewGameService creates a new game service
func NewGameService(profiles *ProfileService) *GameService {
	return &GameService{profiles: profiles}
}

// Start begins a session for the currently selected child. Starting a new
// session abandons any session already in progress, without paying rewards.
func (s *GameService) Start(mode models.GameMode, set *models.WordSet) (*models.GameSession, error) {
	if !mode.Valid() {
		return nil, ErrInvalidGameMode
	}
	child := s.profiles.CurrentChild()
	if child == nil {
		return nil, ErrNoCurrentChild
	}
	if set == nil || len(set.Words) == 0 {
		return nil, ErrEmptyWordSet
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &models.GameSession{
		ID:         utils.NewID("session"),
		ChildID:    child.ID,
		WordSetID:  set.ID,
		Mode:       mode,
		StartedAt:  time.Now(),
		TotalWords: len(set.Words),
	}
	s.wordSet = set
	s.currentIndex = 0
	s.revealed = false
	s.attempts = make(map[string]models.WordAttempt, len(set.Words))
	s.hints = make(map[string]int)

	session := *s.session
	return &session, nil
}

// SubmitAnswer scores one answer against the current word and upserts the
// word's attempt record. After a reveal the word is locked in as incorrect;
// the forced retype that follows can return Correct so the child moves on,
// but it never overturns the recorded verdict.
func (s *GameService) SubmitAnswer(rawAnswer string) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	word, err := s.currentWordLocked()
	if err != nil {
		return nil, err
	}

	existing := s.attempts[word.ID]

	if s.revealed {
		if NormalizeAnswer(rawAnswer) != NormalizeAnswer(word.Text) {
			return &AnswerResult{RevealAnswer: true, Attempts: existing.AttemptCount}, nil
		}
		// Locked record stays incorrect even though the retype succeeded.
		if existing.WordID == "" {
			s.attempts[word.ID] = models.WordAttempt{
				WordID:       word.ID,
				WordText:     word.Text,
				AttemptCount: maxScoringAttempts,
				HintsUsed:    s.hints[word.ID],
				AnswerGiven:  strings.TrimSpace(rawAnswer),
			}
		}
		s.revealed = false
		return &AnswerResult{Correct: true, Attempts: s.attempts[word.ID].AttemptCount}, nil
	}

	attemptNumber := existing.AttemptCount + 1
	decision := EvaluateAnswer(rawAnswer, word.Text, attemptNumber)

	s.attempts[word.ID] = models.WordAttempt{
		WordID:       word.ID,
		WordText:     word.Text,
		AttemptCount: attemptNumber,
		Correct:      decision.Correct,
		HintsUsed:    s.hints[word.ID],
		AnswerGiven:  strings.TrimSpace(rawAnswer),
	}
	if decision.RevealAnswer {
		s.revealed = true
	}

	return &AnswerResult{
		Correct:      decision.Correct,
		RevealAnswer: decision.RevealAnswer,
		Attempts:     attemptNumber,
	}, nil
}

// UseHint counts a hint against the current word.
func (s *GameService) UseHint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	word, err := s.currentWordLocked()
	if err != nil {
		return err
	}
	s.hints[word.ID]++
	if record, ok := s.attempts[word.ID]; ok {
		record.HintsUsed = s.hints[word.ID]
		s.attempts[word.ID] = record
	}
	return nil
}

// Advance moves to the next word. It returns false once the set is
// exhausted, at which point the caller should finalize.
func (s *GameService) Advance() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked(); err != nil {
		return false, err
	}
	s.revealed = false
	if s.currentIndex < len(s.wordSet.Words) {
		s.currentIndex++
	}
	return s.currentIndex < len(s.wordSet.Words), nil
}

// Finalize closes the session, computes the score and accuracy, and pays
// coins and xp to the child exactly once. The attempt list is rebuilt in
// word-set order; words never answered are recorded as incorrect with zero
// attempts. Calling Finalize again returns ErrSessionCompleted.
func (s *GameService) Finalize() (*models.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked(); err != nil {
		return nil, err
	}

	ordered := make([]models.WordAttempt, 0, len(s.wordSet.Words))
	score := 0
	for _, word := range s.wordSet.Words {
		record, ok := s.attempts[word.ID]
		if !ok {
			record = models.WordAttempt{WordID: word.ID, WordText: word.Text}
		}
		if record.Correct {
			score++
		}
		ordered = append(ordered, record)
	}

	accuracy := 0.0
	if s.session.TotalWords > 0 {
		accuracy = 100 * float64(score) / float64(s.session.TotalWords)
	}
	coins := int(math.Round(10 + 0.4*accuracy))
	xp := int(math.Round(10 + 0.5*accuracy))

	if err := s.profiles.ApplyReward(s.session.ChildID, coins, xp); err != nil {
		return nil, err
	}

	now := time.Now()
	s.session.EndedAt = &now
	s.session.Score = score
	s.session.Accuracy = accuracy
	s.session.CoinsEarned = coins
	s.session.XPEarned = xp
	s.session.Attempts = ordered

	session := *s.session
	return &session, nil
}

// Exit abandons the running session without paying rewards.
func (s *GameService) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoActiveSession
	}
	s.session = nil
	s.wordSet = nil
	s.attempts = nil
	s.hints = nil
	s.revealed = false
	s.currentIndex = 0
	return nil
}

// State returns a snapshot of the running (or just-finalized) session.
func (s *GameService) State() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoActiveSession
	}
	state := &GameState{
		Session:      *s.session,
		CurrentIndex: s.currentIndex,
		Revealed:     s.revealed,
	}
	if s.session.EndedAt == nil && s.currentIndex < len(s.wordSet.Words) {
		word := s.wordSet.Words[s.currentIndex]
		state.CurrentWord = &word
	}
	return state, nil
}

// CurrentWord returns the word awaiting an answer.
func (s *GameService) CurrentWord() (*models.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	word, err := s.currentWordLocked()
	if err != nil {
		return nil, err
	}
	copied := *word
	return &copied, nil
}

func (s *GameService) currentWordLocked() (*models.Word, error) {
	if err := s.activeLocked(); err != nil {
		return nil, err
	}
	if s.currentIndex >= len(s.wordSet.Words) {
		return nil, ErrNoCurrentWord
	}
	return &s.wordSet.Words[s.currentIndex], nil
}

func (s *GameService) activeLocked() error {
	if s.session == nil {
		return ErrNoActiveSession
	}
	if s.session.EndedAt != nil {
		return ErrSessionCompleted
	}
	return nil
}
