package service

import (
	"errors"
	"fmt"
	"testing"

	"spellbound/internal/models"
)

func testWordSet(n int) *models.WordSet {
	words := make([]models.Word, n)
	for i := range words {
		words[i] = models.Word{
			ID:   fmt.Sprintf("w%d", i),
			Text: fmt.Sprintf("word%c", 'a'+i),
		}
	}
	return &models.WordSet{
		ID:    "set-1",
		Name:  "Test Set",
		Kind:  models.WordSetRandom,
		Grade: models.Grade2,
		Words: words,
	}
}

func newTestGameService(t *testing.T) (*GameService, *models.ChildProfile) {
	t.Helper()
	profiles := newTestProfileService(t)
	child, err := profiles.CreateChild("Sam", models.Grade2)
	if err != nil {
		t.Fatalf("CreateChild failed: %v", err)
	}
	return NewGameService(profiles), child
}

func TestStartValidation(t *testing.T) {
	svc, _ := newTestGameService(t)

	if _, err := svc.Start(models.GameMode("bogus"), testWordSet(3)); !errors.Is(err, ErrInvalidGameMode) {
		t.Errorf("expected ErrInvalidGameMode, got %v", err)
	}
	if _, err := svc.Start(models.ModeHearAndType, &models.WordSet{ID: "empty"}); !errors.Is(err, ErrEmptyWordSet) {
		t.Errorf("expected ErrEmptyWordSet, got %v", err)
	}

	// No selected child.
	noChild := NewGameService(newTestProfileService(t))
	if _, err := noChild.Start(models.ModeHearAndType, testWordSet(3)); !errors.Is(err, ErrNoCurrentChild) {
		t.Errorf("expected ErrNoCurrentChild, got %v", err)
	}
}

func TestTwoStrikeFlow(t *testing.T) {
	svc, _ := newTestGameService(t)
	set := testWordSet(3)
	if _, err := svc.Start(models.ModeHearAndType, set); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// First wrong attempt prompts a retry, no reveal.
	res, err := svc.SubmitAnswer("nope")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.Correct || res.RevealAnswer || res.Attempts != 1 {
		t.Errorf("first wrong attempt = %+v", res)
	}

	// Second wrong attempt reveals.
	res, err = svc.SubmitAnswer("still nope")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.Correct || !res.RevealAnswer || res.Attempts != 2 {
		t.Errorf("second wrong attempt = %+v", res)
	}

	// Forced retype: a wrong retype keeps revealing.
	res, err = svc.SubmitAnswer("wrong again")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.Correct || !res.RevealAnswer {
		t.Errorf("wrong retype = %+v", res)
	}

	// Correct retype lets the child move on but never flips the verdict.
	res, err = svc.SubmitAnswer(set.Words[0].Text)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !res.Correct {
		t.Errorf("correct retype should return Correct, got %+v", res)
	}

	for i := 1; i < 3; i++ {
		if _, err := svc.Advance(); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
		if _, err := svc.SubmitAnswer(set.Words[i].Text); err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}
	}

	session, err := svc.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if session.Score != 2 {
		t.Errorf("score = %d, want 2 (revealed word stays incorrect)", session.Score)
	}
	if session.Attempts[0].Correct {
		t.Error("revealed word's record should stay incorrect")
	}
	if session.Attempts[0].AttemptCount != 2 {
		t.Errorf("revealed word attempt count = %d, want 2", session.Attempts[0].AttemptCount)
	}
}

func TestAttemptUpsertOneRecordPerWord(t *testing.T) {
	svc, _ := newTestGameService(t)
	set := testWordSet(2)
	if _, err := svc.Start(models.ModeMissingLetters, set); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Two attempts on the first word, then correct on the second.
	svc.SubmitAnswer("nope")
	svc.SubmitAnswer(set.Words[0].Text)
	svc.Advance()
	svc.SubmitAnswer(set.Words[1].Text)

	session, err := svc.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if len(session.Attempts) != 2 {
		t.Fatalf("attempt records = %d, want one per word", len(session.Attempts))
	}
	first := session.Attempts[0]
	if !first.Correct || first.AttemptCount != 2 {
		t.Errorf("first word record = %+v, want correct on attempt 2", first)
	}
}

func TestFinalizeFillsUnansweredWords(t *testing.T) {
	svc, _ := newTestGameService(t)
	set := testWordSet(4)
	if _, err := svc.Start(models.ModeWordScramble, set); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Answer only the first word, then bail to results.
	svc.SubmitAnswer(set.Words[0].Text)

	session, err := svc.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if len(session.Attempts) != 4 {
		t.Fatalf("attempt records = %d, want 4", len(session.Attempts))
	}
	for i, record := range session.Attempts {
		if record.WordID != set.Words[i].ID {
			t.Errorf("record %d out of word-set order", i)
		}
	}
	for _, record := range session.Attempts[1:] {
		if record.Correct || record.AttemptCount != 0 {
			t.Errorf("unanswered word record = %+v, want incorrect with zero attempts", record)
		}
	}
	if session.Score != 1 {
		t.Errorf("score = %d, want 1", session.Score)
	}
}

func TestRewardCurve(t *testing.T) {
	// 7 of 10 correct: accuracy 70, coins round(10+0.4*70)=38, xp round(10+0.5*70)=45.
	svc, child := newTestGameService(t)
	set := testWordSet(10)
	if _, err := svc.Start(models.ModeHearAndType, set); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		answer := set.Words[i].Text
		if i >= 7 {
			answer = "wrong"
		}
		svc.SubmitAnswer(answer)
		svc.Advance()
	}

	session, err := svc.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if session.Accuracy != 70 {
		t.Errorf("accuracy = %v, want 70", session.Accuracy)
	}
	if session.CoinsEarned != 38 {
		t.Errorf("coins = %d, want 38", session.CoinsEarned)
	}
	if session.XPEarned != 45 {
		t.Errorf("xp = %d, want 45", session.XPEarned)
	}

	got := svc.profiles.CurrentChild()
	if got.Coins != child.Coins+38 {
		t.Errorf("child coins = %d, want %d", got.Coins, child.Coins+38)
	}
	if got.XP != 45 || got.Level != 1 {
		t.Errorf("child xp/level = %d/%d, want 45/1", got.XP, got.Level)
	}
}

func TestFinalizeTwiceNoDoublePayout(t *testing.T) {
	svc, _ := newTestGameService(t)
	set := testWordSet(2)
	if _, err := svc.Start(models.ModeHearAndType, set); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	svc.SubmitAnswer(set.Words[0].Text)
	svc.Advance()
	svc.SubmitAnswer(set.Words[1].Text)

	first, err := svc.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	coinsAfter := svc.profiles.CurrentChild().Coins

	if _, err := svc.Finalize(); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("second Finalize error = %v, want ErrSessionCompleted", err)
	}
	if got := svc.profiles.CurrentChild().Coins; got != coinsAfter {
		t.Errorf("coins changed on second finalize: %d -> %d", coinsAfter, got)
	}
	if first.EndedAt == nil {
		t.Error("finalized session should carry an end time")
	}
}

func TestExitPaysNothing(t *testing.T) {
	svc, child := newTestGameService(t)
	set := testWordSet(3)
	if _, err := svc.Start(models.ModeHearAndType, set); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	svc.SubmitAnswer(set.Words[0].Text)

	if err := svc.Exit(); err != nil {
		t.Fatalf("Exit failed: %v", err)
	}
	got := svc.profiles.CurrentChild()
	if got.Coins != child.Coins || got.XP != 0 {
		t.Error("abandoned session must not pay rewards")
	}
	if _, err := svc.Finalize(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Finalize after Exit error = %v, want ErrNoActiveSession", err)
	}
}

func TestHintsCounted(t *testing.T) {
	svc, _ := newTestGameService(t)
	set := testWordSet(1)
	if _, err := svc.Start(models.ModeMissingLetters, set); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	svc.UseHint()
	svc.UseHint()
	svc.SubmitAnswer(set.Words[0].Text)

	session, err := svc.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if session.Attempts[0].HintsUsed != 2 {
		t.Errorf("hints used = %d, want 2", session.Attempts[0].HintsUsed)
	}
}

func TestStateSnapshot(t *testing.T) {
	svc, _ := newTestGameService(t)

	if _, err := svc.State(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("State with no session error = %v, want ErrNoActiveSession", err)
	}

	set := testWordSet(2)
	if _, err := svc.Start(models.ModeHearAndType, set); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	state, err := svc.State()
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if state.CurrentWord == nil || state.CurrentWord.ID != set.Words[0].ID {
		t.Error("state should expose the first word")
	}

	svc.SubmitAnswer(set.Words[0].Text)
	more, err := svc.Advance()
	if err != nil || !more {
		t.Fatalf("Advance = %v, %v; want more words", more, err)
	}
	state, _ = svc.State()
	if state.CurrentIndex != 1 {
		t.Errorf("current index = %d, want 1", state.CurrentIndex)
	}
}
