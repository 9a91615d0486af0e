// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-trip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ReconcileService merges the versioned built-in itinerary with a user's
// saved copy across seed version bumps.
type ReconcileService interface {
	// BuildMergedItinerary produces a merged day sequence: every seed date
	// is present with the seed's day-level metadata and items, user-added
	// items (ids absent from the seed day and the removed set) are appended
	// after the seed items in original order, and saved days without a
	// seed counterpart are appended unchanged after all seed days.
	BuildMergedItinerary(ctx context.Context, seedDays, savedDays []models.DailySchedule, removedIDs map[string]struct{}) ([]models.DailySchedule, error)
}

// AssistantService is the relay-side assistant: it validates requests,
// grounds them in the itinerary context, and calls the generative backend.
type AssistantService interface {
	// Chat validates the prompt, computes the context summary, and runs
	// a grounded chat completion.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// Synthesize validates the text and runs speech synthesis. The
	// response audio is base64 encoded 24kHz mono PCM.
	Synthesize(ctx context.Context, req models.TTSRequest) (models.TTSResponse, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
