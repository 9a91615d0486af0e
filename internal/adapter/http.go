package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

type httpRelayAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRelayAdapter constructs an HTTP/REST implementation of [RelayAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRelayAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RelayAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRelayAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Chat implements [RelayAdapter]. It POSTs the chat request to
// POST /api/chat and decodes the generated reply. Returns a wrapped
// [ErrBadRequest] on validation failures, [ErrTooManyRequests] on rate
// limiting, or [ErrInternalServerError] when the backend fails.
func (h *httpRelayAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/chat")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	var chatResp models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &chatResp); err != nil {
		return models.ChatResponse{}, fmt.Errorf("decode chat response: %w", err)
	}

	return chatResp, nil
}

// Speak implements [RelayAdapter]. It POSTs the text to POST /api/tts and
// returns the base64 audio payload. Error mapping matches Chat.
func (h *httpRelayAdapter) Speak(ctx context.Context, req models.TTSRequest) (models.TTSResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/tts")
	if err != nil {
		return models.TTSResponse{}, fmt.Errorf("tts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TTSResponse{}, err
	}

	var ttsResp models.TTSResponse
	if err = json.Unmarshal(resp.Body(), &ttsResp); err != nil {
		return models.TTSResponse{}, fmt.Errorf("decode tts response: %w", err)
	}

	return ttsResp, nil
}

// Health implements [RelayAdapter]. It GETs GET /health and decodes the
// status body.
func (h *httpRelayAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var healthResp models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &healthResp); err != nil {
		return models.HealthResponse{}, fmt.Errorf("decode health response: %w", err)
	}

	return healthResp, nil
}

// Alive implements [RelayAdapter].
func (h *httpRelayAdapter) Alive(ctx context.Context) bool {
	health, err := h.Health(ctx)
	if err != nil {
		return false
	}

	return health.Status == "ok"
}
