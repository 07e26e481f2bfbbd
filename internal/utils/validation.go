package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	wordRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
	pinRegex  = regexp.MustCompile(`^[0-9]{4,8}$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateWordText checks that a custom word contains only letters
func ValidateWordText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ValidationError{Field: "word", Message: "word is required"}
	}
	if !wordRegex.MatchString(text) {
		return ValidationError{Field: "word", Message: "word must contain only letters"}
	}
	return nil
}

// ValidateChildName checks if a child name is valid
func ValidateChildName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > 30 {
		return ValidationError{Field: "name", Message: "name must be 30 characters or fewer"}
	}
	return nil
}

// ValidatePin checks if a parent PIN meets requirements
func ValidatePin(pin string) error {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return ValidationError{Field: "pin", Message: "pin is required"}
	}
	if !pinRegex.MatchString(pin) {
		return ValidationError{Field: "pin", Message: "pin must be 4 to 8 digits"}
	}
	return nil
}

// ValidateListName checks if a word set name is valid
func ValidateListName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > 60 {
		return ValidationError{Field: "name", Message: "name must be 60 characters or fewer"}
	}
	return nil
}
