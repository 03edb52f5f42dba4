package entity

import (
	"errors"
	"fmt"
)

// Domain errors for language profiles and the working dictionary.
var (
	ErrNoConsonants            = errors.New("select at least one consonant for the language")
	ErrNoVowels                = errors.New("select at least one vowel for the language")
	ErrInvalidFootSize         = errors.New("foot size must be either 2 or 3 syllables")
	ErrInvalidStressedSyllable = errors.New("stressed syllable must fall within the foot size")
	ErrInvalidStressPattern    = errors.New("unknown stress pattern")
	ErrMissingCustomPattern    = errors.New("custom foot-based stress requires foot parameters")
	ErrInvalidWordOrder        = errors.New("unknown word order")

	ErrLanguageNotFound  = errors.New("language not found")
	ErrInvalidLanguageID = errors.New("invalid language ID")

	ErrDictionaryEntryNotFound   = errors.New("dictionary entry not found")
	ErrDuplicateDictionaryEntry  = errors.New("dictionary entry already exists")
	ErrIncompleteDictionaryEntry = errors.New("please complete all fields")
	ErrNoSelection               = errors.New("select an entry to remove")
	ErrInvalidFilter             = errors.New("invalid filter")

	ErrUnknownTemplate = errors.New("unknown grammar template")
	ErrUnknownVoice    = errors.New("unknown voice")
	ErrEmptyText       = errors.New("enter text first")
)

// ValidationError marks user input that blocks the current operation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
