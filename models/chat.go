package models

import "time"

// ChatRole identifies the author of a chat turn.
type ChatRole string

// Chat roles understood by the generative backend.
const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is a single assistant-conversation turn. Messages are
// session-only and never persisted across runs.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// GeoLocation is an optional device position attached to chat requests.
type GeoLocation struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy,omitempty"`
}
