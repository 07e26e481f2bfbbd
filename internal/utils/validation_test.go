package utils

import (
	"errors"
	"testing"
)

func TestValidateWordText(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		wantErr bool
	}{
		{name: "simple word", word: "cat", wantErr: false},
		{name: "mixed case", word: "Butterfly", wantErr: false},
		{name: "surrounding whitespace", word: "  dog  ", wantErr: false},
		{name: "empty", word: "", wantErr: true},
		{name: "whitespace only", word: "   ", wantErr: true},
		{name: "contains digit", word: "c4t", wantErr: true},
		{name: "contains hyphen", word: "ice-cream", wantErr: true},
		{name: "contains space", word: "ice cream", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWordText(tt.word)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWordText(%q) error = %v, wantErr %v", tt.word, err, tt.wantErr)
			}
			if err != nil {
				var vErr ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("error should be a ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestValidatePin(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr bool
	}{
		{name: "four digits", pin: "1234", wantErr: false},
		{name: "eight digits", pin: "12345678", wantErr: false},
		{name: "trimmed", pin: " 1234 ", wantErr: false},
		{name: "too short", pin: "123", wantErr: true},
		{name: "too long", pin: "123456789", wantErr: true},
		{name: "letters", pin: "abcd", wantErr: true},
		{name: "empty", pin: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePin(tt.pin)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePin(%q) error = %v, wantErr %v", tt.pin, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChildName(t *testing.T) {
	if err := ValidateChildName("Maya"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateChildName("   "); err == nil {
		t.Error("blank name should be rejected")
	}
}
