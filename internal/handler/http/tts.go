package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/models"
)

func (h *Handler) tts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TTSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON was passed"})
		return
	}

	resp, err := h.services.AssistantService.Synthesize(ctx, req)
	if err != nil {
		log.Err(err).Msg("speech synthesis failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
