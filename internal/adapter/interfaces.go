// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport layer of go-trip-keeper.
//
// The client side talks to the relay through [RelayAdapter] and to the
// public wttr.in weather API through [WeatherAPI]; the relay itself talks
// to the Gemini API through [GenAI]. All three are resty-based HTTP
// implementations behind small interfaces so the service layer stays
// transport-agnostic.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-trip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RelayAdapter defines transport-agnostic communication with the relay
// server from the client application.
type RelayAdapter interface {
	// Chat sends a prompt plus conversation history, the full itinerary,
	// and an optional device location to the relay. Returns the generated
	// assistant reply.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// Speak asks the relay to synthesize the given text. Returns base64
	// encoded 24kHz mono PCM audio.
	Speak(ctx context.Context, req models.TTSRequest) (models.TTSResponse, error)

	// Health fetches the relay health endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Alive reports whether the relay currently answers its health check.
	// Used as the connectivity probe for offline-aware behavior.
	Alive(ctx context.Context) bool
}

// WeatherAPI fetches a live weather snapshot for a canonical location name.
type WeatherAPI interface {
	// Fetch returns the current snapshot for one of the known locations.
	// Returns [ErrUnknownLocation] for names with no registered coordinates.
	Fetch(ctx context.Context, location string) (models.WeatherData, error)

	// Locations lists the canonical location names the API can serve.
	Locations() []string
}

// GenAI defines the relay's outbound generative backend calls.
type GenAI interface {
	// GenerateText runs a chat completion over the given turns with the
	// supplied system instruction. The final turn must be the user prompt.
	GenerateText(ctx context.Context, systemInstruction string, turns []models.ChatTurn) (string, error)

	// GenerateSpeech synthesizes the given text and returns base64 encoded
	// PCM audio. Returns [ErrNoAudioData] when the backend answers without
	// an audio payload.
	GenerateSpeech(ctx context.Context, text string) (string, error)
}
