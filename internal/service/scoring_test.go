package service

import "testing"

func TestEvaluateAnswer(t *testing.T) {
	tests := []struct {
		name          string
		answer        string
		target        string
		attemptNumber int
		wantCorrect   bool
		wantReveal    bool
	}{
		{
			name:          "exact match",
			answer:        "cat",
			target:        "cat",
			attemptNumber: 1,
			wantCorrect:   true,
		},
		{
			name:          "case insensitive match",
			answer:        "CaT",
			target:        "cat",
			attemptNumber: 1,
			wantCorrect:   true,
		},
		{
			name:          "whitespace trimmed",
			answer:        "  cat  ",
			target:        "cat",
			attemptNumber: 2,
			wantCorrect:   true,
		},
		{
			name:          "first wrong attempt prompts retry",
			answer:        "kat",
			target:        "cat",
			attemptNumber: 1,
			wantCorrect:   false,
			wantReveal:    false,
		},
		{
			name:          "second wrong attempt reveals",
			answer:        "kat",
			target:        "cat",
			attemptNumber: 2,
			wantCorrect:   false,
			wantReveal:    true,
		},
		{
			name:          "later wrong attempts keep revealing",
			answer:        "kat",
			target:        "cat",
			attemptNumber: 5,
			wantCorrect:   false,
			wantReveal:    true,
		},
		{
			name:          "no partial credit",
			answer:        "ca",
			target:        "cat",
			attemptNumber: 1,
			wantCorrect:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EvaluateAnswer(tt.answer, tt.target, tt.attemptNumber)
			if d.Correct != tt.wantCorrect {
				t.Errorf("Correct = %v, want %v", d.Correct, tt.wantCorrect)
			}
			if d.RevealAnswer != tt.wantReveal {
				t.Errorf("RevealAnswer = %v, want %v", d.RevealAnswer, tt.wantReveal)
			}
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Cat ", "cat"},
		{"DOG", "dog"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAnswer(tt.in); got != tt.want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
