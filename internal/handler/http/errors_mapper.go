package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPromptRequired:      http.StatusBadRequest,
	service.ErrPromptTooLong:       http.StatusBadRequest,
	service.ErrTextRequired:        http.StatusBadRequest,
	service.ErrTextTooLong:         http.StatusBadRequest,

	service.ErrChatGeneration: http.StatusInternalServerError,
	service.ErrTTSGeneration:  http.StatusInternalServerError,
	service.ErrNoAudioData:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the error body shared by all endpoints. Mapped sentinel
// errors carry their exact client-facing text; anything unmapped degrades to
// the generic 500 message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError && !isClientFacing(err) {
		message = http.StatusText(http.StatusInternalServerError)
	}
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

func isClientFacing(err error) bool {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
