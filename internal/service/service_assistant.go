// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/adapter"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// Request size limits enforced before anything reaches the generative
// backend.
const (
	maxPromptLength = 1000
	maxTTSLength    = 5000
)

// ttsStylePrefix steers the synthesis voice; it is prepended to every
// passage and never echoed back to the client.
const ttsStylePrefix = "Read this travel description clearly and warmly: "

type assistantService struct {
	genAI adapter.GenAI

	logger *logger.Logger
}

// NewAssistantService constructs the relay-side assistant service.
func NewAssistantService(genAI adapter.GenAI, logger *logger.Logger) AssistantService {
	return &assistantService{genAI: genAI, logger: logger}
}

// Chat implements AssistantService.
func (s *assistantService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)

	if req.Prompt == "" {
		return models.ChatResponse{}, ErrPromptRequired
	}
	if len(req.Prompt) > maxPromptLength {
		return models.ChatResponse{}, ErrPromptTooLong
	}

	instruction := buildSystemInstruction(req.Itinerary, req.Location, time.Now())

	turns := make([]models.ChatTurn, 0, len(req.History)+1)
	turns = append(turns, req.History...)
	turns = append(turns, models.ChatTurn{
		Role:  models.ChatRoleUser,
		Parts: []models.ChatPart{{Text: req.Prompt}},
	})

	text, err := s.genAI.GenerateText(ctx, instruction, turns)
	if err != nil {
		log.Err(err).Str("func", "assistantService.Chat").Msg("error generating chat response")
		return models.ChatResponse{}, ErrChatGeneration
	}

	return models.ChatResponse{Text: text}, nil
}

// Synthesize implements AssistantService.
func (s *assistantService) Synthesize(ctx context.Context, req models.TTSRequest) (models.TTSResponse, error) {
	log := logger.FromContext(ctx)

	if req.Text == "" {
		return models.TTSResponse{}, ErrTextRequired
	}
	if len(req.Text) > maxTTSLength {
		return models.TTSResponse{}, ErrTextTooLong
	}

	audio, err := s.genAI.GenerateSpeech(ctx, ttsStylePrefix+req.Text)
	switch {
	case errors.Is(err, adapter.ErrNoAudioData):
		return models.TTSResponse{}, ErrNoAudioData
	case err != nil:
		log.Err(err).Str("func", "assistantService.Synthesize").Msg("error generating speech")
		return models.TTSResponse{}, ErrTTSGeneration
	}

	return models.TTSResponse{Audio: audio}, nil
}

// buildSystemInstruction assembles the grounding prompt: the assistant
// persona, the schedule digest, the optional device position and the whole
// itinerary as JSON, followed by the behavioral rules.
func buildSystemInstruction(itinerary []models.DailySchedule, location *models.GeoLocation, now time.Time) string {
	contextSummary := buildContextSummary(itinerary, now)

	position := "Not provided"
	if location != nil {
		position = fmt.Sprintf("%v, %v", location.Lat, location.Lng)
		if location.Accuracy > 0 {
			position += fmt.Sprintf(" (±%dm)", int(math.Round(location.Accuracy)))
		}
	}

	if itinerary == nil {
		itinerary = []models.DailySchedule{}
	}
	// Marshalling a day slice cannot fail: the model contains only plain
	// JSON-encodable fields.
	itineraryJSON, _ := json.Marshal(itinerary)

	return fmt.Sprintf(`You are the "Dubai-Oman Family Explorer" Assistant.

CURRENT CONTEXT: %s

CURRENT LOCATION (if available): %s

FULL ITINERARY: %s

Your role is to:
1. Answer questions about the schedule, using the CURRENT CONTEXT to know what's been done and what's coming next.
2. Suggest nearby restaurants or activities for gaps in the schedule.
3. Provide historical or cultural context for the locations being visited.
4. NEVER hallucinate or change the fixed flight or mass timings.
5. Be helpful, family-oriented, and encouraging.
6. If asked about "nearby" spots and CURRENT LOCATION is provided, tailor suggestions to that area (approximate, no web browsing).`,
		contextSummary, position, itineraryJSON)
}
