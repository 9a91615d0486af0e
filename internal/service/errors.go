package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrDayNotFound           = errors.New("schedule day not found")
	ErrItemNotFound          = errors.New("itinerary item not found")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrNoAudioAvailable signals that speech synthesis produced no playable
	// audio; callers treat it as "no audio available" rather than a failure.
	ErrNoAudioAvailable = errors.New("no audio available")

	ErrValidationInvalidAmount   = errors.New("amount must be greater than zero")
	ErrValidationInvalidCurrency = errors.New("unknown currency")
	ErrValidationEmptyEntry      = errors.New("entry must have a title or text")
)

// Relay validation and failure errors. The texts are the exact messages the
// relay returns to clients, so the handler layer writes them verbatim.
var (
	ErrPromptRequired = errors.New("Prompt is required and must be a string")
	ErrPromptTooLong  = errors.New("Prompt is too long (max 1000 characters)")
	ErrTextRequired   = errors.New("Text is required and must be a string")
	ErrTextTooLong    = errors.New("Text is too long (max 5000 characters)")

	ErrChatGeneration = errors.New("Failed to generate response. Please try again.")
	ErrTTSGeneration  = errors.New("Failed to generate audio. Please try again.")
	ErrNoAudioData    = errors.New("No audio data returned")
)
