package models

import "time"

// JournalEntry is a diary record with optional embedded photos.
type JournalEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Body      string    `json:"text"`

	// Images holds embedded image payloads (base64 data URLs), in the
	// order the user attached them.
	Images []string `json:"imageDataUrls,omitempty"`
}
