package controller

import (
	"errors"
	"fmt"

	goaway "github.com/TwiN/go-away"
	"github.com/asaskevich/govalidator"
)

// ValidateUsername validates a username against a set of rules.
func ValidateUsername(username string) error {
	// Check if the username is long enough
	minLength := 3
	if len(username) < minLength {
		return fmt.Errorf("username must be at least %d characters", minLength)
	}

	// Check if the username is alphanumeric
	if !govalidator.IsAlphanumeric(username) {
		return fmt.Errorf("username can only contain alphanumeric characters")
	}

	// Profanity check
	profanityDetector := goaway.NewProfanityDetector().WithSanitizeLeetSpeak(true).WithSanitizeSpecialCharacters(true).WithSanitizeAccents(false)
	if profanityDetector.IsProfane(username) {
		return fmt.Errorf("username contains inappropriate language")
	}

	return nil
}

// ValidatePassword rejects empty passwords. Strength rules are the backend's call.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}
