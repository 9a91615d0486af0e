package models

// ChatPart is one text fragment of a chat turn as the relay wire format
// represents it.
type ChatPart struct {
	Text string `json:"text"`
}

// ChatTurn is one prior conversation turn sent to the relay.
type ChatTurn struct {
	Role  ChatRole   `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	// Prompt is the user's question. Required, at most 1000 characters.
	Prompt string `json:"prompt"`

	// History holds the prior turns of the running conversation.
	History []ChatTurn `json:"history,omitempty"`

	// Itinerary is the full current itinerary snapshot used as grounding
	// context by the generative backend.
	Itinerary []DailySchedule `json:"itinerary,omitempty"`

	// Location optionally carries the device position.
	Location *GeoLocation `json:"location,omitempty"`
}

// ChatResponse is the success body of POST /api/chat.
type ChatResponse struct {
	Text string `json:"text"`
}

// TTSRequest is the body of POST /api/tts.
type TTSRequest struct {
	// Text is the passage to synthesize. Required, at most 5000 characters.
	Text string `json:"text"`
}

// TTSResponse is the success body of POST /api/tts. Audio is a
// base64-encoded single-channel 24kHz PCM payload.
type TTSResponse struct {
	Audio string `json:"audio"`
}

// ErrorResponse is the error body shared by all relay endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
