package service

import (
	"github.com/MKhiriev/go-trip-keeper/internal/adapter"
	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
)

// Services aggregates the relay-side services.
type Services struct {
	AssistantService AssistantService
	AppInfoService   AppInfoService
}

func NewServices(genAI adapter.GenAI, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoSvc, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AssistantService: NewAssistantService(genAI, logger),
		AppInfoService:   appInfoSvc,
	}, nil
}
