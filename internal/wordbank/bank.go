// Package wordbank holds the grade-scoped spelling catalog: the built-in
// K-5 words plus any parent-added custom words, with filtered random
// sampling for building practice sets.
package wordbank

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"spellbound/internal/models"
	"spellbound/internal/utils"
)

// Filters narrows random sampling by phonics pattern and/or word length.
type Filters struct {
	PhonicsPatterns []string
	MinLength       int
	MaxLength       int
}

// Bank is the augmentable word catalog.
type Bank struct {
	mu    sync.RWMutex
	words []models.Word
}

// New creates a bank seeded with the built-in catalog.
func New() *Bank {
	words := make([]models.Word, len(catalog))
	copy(words, catalog)
	return &Bank{words: words}
}

// WordsByGrade returns all catalog words for a grade, built-in and custom.
func (b *Bank) WordsByGrade(grade models.GradeLevel) []models.Word {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var result []models.Word
	for _, w := range b.words {
		if w.Grade == grade {
			result = append(result, w)
		}
	}
	return result
}

// RandomWords samples up to count words for a grade without replacement.
// Returned words always have distinct lowercase text, even if the catalog
// were ever to contain duplicates.
func (b *Bank) RandomWords(grade models.GradeLevel, count int, filters *Filters) []models.Word {
	return b.sample(grade, count, filters, nil)
}

// RerollWords samples like RandomWords but never returns a word whose
// lowercase text appears in exclude. Callers rerolling part of a set pass
// both the kept words and the words being replaced.
func (b *Bank) RerollWords(grade models.GradeLevel, count int, filters *Filters, exclude []string) []models.Word {
	excluded := make(map[string]bool, len(exclude))
	for _, text := range exclude {
		excluded[strings.ToLower(strings.TrimSpace(text))] = true
	}
	return b.sample(grade, count, filters, excluded)
}

func (b *Bank) sample(grade models.GradeLevel, count int, filters *Filters, excluded map[string]bool) []models.Word {
	b.mu.RLock()
	defer b.mu.RUnlock()

	seen := make(map[string]bool)
	var pool []models.Word
	for _, w := range b.words {
		if w.Grade != grade || !matchesFilters(w, filters) {
			continue
		}
		key := strings.ToLower(w.Text)
		if seen[key] || excluded[key] {
			continue
		}
		seen[key] = true
		pool = append(pool, w)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count < len(pool) {
		pool = pool[:count]
	}
	return pool
}

func matchesFilters(w models.Word, filters *Filters) bool {
	if filters == nil {
		return true
	}
	if len(filters.PhonicsPatterns) > 0 {
		found := false
		for _, want := range filters.PhonicsPatterns {
			for _, have := range w.PhonicsPatterns {
				if have == want {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	if filters.MinLength > 0 && w.Length < filters.MinLength {
		return false
	}
	if filters.MaxLength > 0 && w.Length > filters.MaxLength {
		return false
	}
	return true
}

// AddCustomWord validates and merges a parent-added word into the catalog.
func (b *Bank) AddCustomWord(text string, grade models.GradeLevel, difficulty int, definition, exampleSentence string) (*models.Word, error) {
	if err := utils.ValidateWordText(text); err != nil {
		return nil, err
	}
	if !grade.Valid() {
		return nil, utils.ValidationError{Field: "grade", Message: "unknown grade level"}
	}
	if difficulty == 0 {
		difficulty = 3
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, utils.ValidationError{Field: "difficulty", Message: "difficulty must be between 1 and 5"}
	}

	normalized := strings.ToLower(strings.TrimSpace(text))

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, w := range b.words {
		if w.Grade == grade && strings.ToLower(w.Text) == normalized {
			return nil, utils.ValidationError{Field: "word", Message: "word already exists for this grade"}
		}
	}

	word := models.Word{
		ID:              utils.NewID("custom"),
		Text:            normalized,
		Grade:           grade,
		Length:          len(normalized),
		Syllables:       estimateSyllables(normalized),
		PhonicsPatterns: []string{},
		Difficulty:      difficulty,
		Definition:      definition,
		ExampleSentence: exampleSentence,
	}
	b.words = append(b.words, word)
	return &word, nil
}

// estimateSyllables counts vowel groups as a rough syllable estimate.
func estimateSyllables(word string) int {
	count := 0
	inVowelRun := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !inVowelRun {
			count++
		}
		inVowelRun = isVowel
	}
	if count == 0 {
		count = 1
	}
	return count
}

// NewRandomSet builds a randomly sampled word set for a grade.
func (b *Bank) NewRandomSet(grade models.GradeLevel, count int, filters *Filters, name string) *models.WordSet {
	if name == "" {
		name = grade.Label() + " Practice"
	}
	return &models.WordSet{
		ID:        utils.NewID("random"),
		Name:      name,
		Kind:      models.WordSetRandom,
		Grade:     grade,
		Words:     b.RandomWords(grade, count, filters),
		CreatedAt: time.Now(),
	}
}

// NewCustomSet builds a word set from an explicit word list, rejecting
// duplicate texts (case-insensitive) so set order stays meaningful.
func NewCustomSet(name string, grade models.GradeLevel, words []models.Word) (*models.WordSet, error) {
	if err := utils.ValidateListName(name); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		key := strings.ToLower(strings.TrimSpace(w.Text))
		if seen[key] {
			return nil, utils.ValidationError{Field: "words", Message: "duplicate word in set: " + w.Text}
		}
		seen[key] = true
	}
	return &models.WordSet{
		ID:        utils.NewID("custom-set"),
		Name:      strings.TrimSpace(name),
		Kind:      models.WordSetCustom,
		Grade:     grade,
		Words:     words,
		CreatedAt: time.Now(),
	}, nil
}
