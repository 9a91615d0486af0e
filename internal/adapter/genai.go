package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

const (
	genaiBaseURL = "https://generativelanguage.googleapis.com"

	chatModel       = "gemini-3-flash-preview"
	ttsModel        = "gemini-2.5-flash-preview-tts"
	ttsVoice        = "Kore"
	chatTemperature = 0.7
)

// Gemini generateContent wire format, trimmed to the fields we use.
type genaiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type genaiPart struct {
	Text       string           `json:"text,omitempty"`
	InlineData *genaiInlineData `json:"inlineData,omitempty"`
}

type genaiContent struct {
	Role  string      `json:"role,omitempty"`
	Parts []genaiPart `json:"parts"`
}

type genaiPrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type genaiVoiceConfig struct {
	PrebuiltVoiceConfig genaiPrebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type genaiSpeechConfig struct {
	VoiceConfig genaiVoiceConfig `json:"voiceConfig"`
}

type genaiGenerationConfig struct {
	Temperature        *float64           `json:"temperature,omitempty"`
	ResponseModalities []string           `json:"responseModalities,omitempty"`
	SpeechConfig       *genaiSpeechConfig `json:"speechConfig,omitempty"`
}

type genaiRequest struct {
	SystemInstruction *genaiContent          `json:"systemInstruction,omitempty"`
	Contents          []genaiContent         `json:"contents"`
	GenerationConfig  *genaiGenerationConfig `json:"generationConfig,omitempty"`
}

type genaiResponse struct {
	Candidates []struct {
		Content genaiContent `json:"content"`
	} `json:"candidates"`
}

type geminiClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewGeminiClient constructs a [GenAI] backed by the Gemini REST API. The
// API key travels in the x-goog-api-key header on every request.
func NewGeminiClient(relayCfg config.Relay, logger *logger.Logger) GenAI {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(genaiBaseURL).
		SetHeader("x-goog-api-key", relayCfg.GeminiAPIKey)

	return &geminiClient{client: client, logger: logger}
}

// GenerateText implements [GenAI].
func (g *geminiClient) GenerateText(ctx context.Context, systemInstruction string, turns []models.ChatTurn) (string, error) {
	temperature := chatTemperature
	req := genaiRequest{
		SystemInstruction: &genaiContent{
			Parts: []genaiPart{{Text: systemInstruction}},
		},
		Contents:         toGenaiContents(turns),
		GenerationConfig: &genaiGenerationConfig{Temperature: &temperature},
	}

	resp, err := g.generateContent(ctx, chatModel, req)
	if err != nil {
		return "", err
	}

	text := firstPart(resp).Text
	if text == "" {
		return "", ErrEmptyCandidates
	}

	return text, nil
}

// GenerateSpeech implements [GenAI].
func (g *geminiClient) GenerateSpeech(ctx context.Context, text string) (string, error) {
	req := genaiRequest{
		Contents: []genaiContent{
			{Parts: []genaiPart{{Text: text}}},
		},
		GenerationConfig: &genaiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genaiSpeechConfig{
				VoiceConfig: genaiVoiceConfig{
					PrebuiltVoiceConfig: genaiPrebuiltVoiceConfig{VoiceName: ttsVoice},
				},
			},
		},
	}

	resp, err := g.generateContent(ctx, ttsModel, req)
	if err != nil {
		return "", err
	}

	part := firstPart(resp)
	if part.InlineData == nil || part.InlineData.Data == "" {
		return "", ErrNoAudioData
	}

	return part.InlineData.Data, nil
}

func (g *geminiClient) generateContent(ctx context.Context, model string, req genaiRequest) (*genaiResponse, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&genaiResponse{}).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", model))
	if err != nil {
		return nil, fmt.Errorf("generate content request (model=%s): %w", model, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	result, ok := resp.Result().(*genaiResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected generate content response type (model=%s)", model)
	}

	return result, nil
}

func toGenaiContents(turns []models.ChatTurn) []genaiContent {
	contents := make([]genaiContent, 0, len(turns))
	for _, turn := range turns {
		parts := make([]genaiPart, 0, len(turn.Parts))
		for _, part := range turn.Parts {
			parts = append(parts, genaiPart{Text: part.Text})
		}
		contents = append(contents, genaiContent{Role: string(turn.Role), Parts: parts})
	}

	return contents
}

func firstPart(resp *genaiResponse) genaiPart {
	if resp == nil || len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return genaiPart{}
	}

	return resp.Candidates[0].Content.Parts[0]
}
