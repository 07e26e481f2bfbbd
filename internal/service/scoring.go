package service

import "strings"

// maxScoringAttempts is the two-strike policy: after two wrong answers the
// correct spelling is revealed and the word is locked in as incorrect.
const maxScoringAttempts = 2

// Decision is the outcome of evaluating a single submitted answer.
type Decision struct {
	Correct      bool
	RevealAnswer bool
}

// NormalizeAnswer prepares a raw answer (or target) for comparison.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EvaluateAnswer compares a raw answer against the target spelling.
// Comparison is exact string equality after trimming and lowercasing; there
// is no fuzzy matching or partial credit. The first wrong attempt asks the
// caller to prompt a retry; the second (or later) wrong attempt asks the
// caller to reveal the correct spelling.
func EvaluateAnswer(rawAnswer, targetText string, attemptNumber int) Decision {
	if NormalizeAnswer(rawAnswer) == NormalizeAnswer(targetText) {
		return Decision{Correct: true}
	}
	if attemptNumber >= maxScoringAttempts {
		return Decision{RevealAnswer: true}
	}
	return Decision{}
}
