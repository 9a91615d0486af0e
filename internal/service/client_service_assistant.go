package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/adapter"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

type clientAssistantService struct {
	relay adapter.RelayAdapter

	logger *logger.Logger
}

// NewClientAssistantService constructs the client side of the AI assistant.
func NewClientAssistantService(relay adapter.RelayAdapter, logger *logger.Logger) ClientAssistantService {
	return &clientAssistantService{relay: relay, logger: logger}
}

// Ask implements ClientAssistantService. The running history is converted
// to the relay's turn format; the itinerary and the optional device
// location travel with every request so the backend always grounds its
// answer in current data.
func (s *clientAssistantService) Ask(
	ctx context.Context,
	prompt string,
	history []models.ChatMessage,
	itinerary []models.DailySchedule,
	location *models.GeoLocation,
) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return models.ChatMessage{}, ErrInvalidDataProvided
	}

	req := models.ChatRequest{
		Prompt:    prompt,
		History:   historyToTurns(history),
		Itinerary: itinerary,
		Location:  location,
	}

	resp, err := s.relay.Chat(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "clientAssistantService.Ask").Msg("error asking assistant")
		return models.ChatMessage{}, fmt.Errorf("error asking assistant: %w", err)
	}

	return models.ChatMessage{
		Role:      models.ChatRoleModel,
		Text:      resp.Text,
		Timestamp: time.Now(),
	}, nil
}

// Speak implements ClientAssistantService. The relay answers with base64
// PCM; the result is wrapped in a WAV container so callers can hand it to
// any player or save it to disk as-is.
func (s *clientAssistantService) Speak(ctx context.Context, text string) ([]byte, error) {
	log := logger.FromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidDataProvided
	}

	resp, err := s.relay.Speak(ctx, models.TTSRequest{Text: text})
	if err != nil {
		log.Err(err).Str("func", "clientAssistantService.Speak").Msg("error synthesizing speech")
		return nil, fmt.Errorf("error synthesizing speech: %w", err)
	}

	pcm, err := base64.StdEncoding.DecodeString(resp.Audio)
	if err != nil {
		log.Err(err).Str("func", "clientAssistantService.Speak").Msg("error decoding audio payload")
		return nil, fmt.Errorf("error decoding audio payload: %w", err)
	}
	if len(pcm) == 0 {
		return nil, ErrNoAudioAvailable
	}

	return utils.EncodeWAV(pcm, utils.WAVSampleRate, utils.WAVChannels, utils.WAVBitsPerSample), nil
}

// historyToTurns converts session chat messages to the relay wire format.
func historyToTurns(history []models.ChatMessage) []models.ChatTurn {
	turns := make([]models.ChatTurn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, models.ChatTurn{
			Role:  msg.Role,
			Parts: []models.ChatPart{{Text: msg.Text}},
		})
	}
	return turns
}
