package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wttrDubaiJSON = `{
	"current_condition": [
		{"temp_C": "24", "weatherDesc": [{"value": "Sunny"}]}
	],
	"weather": [
		{"maxtempC": "27", "mintempC": "18"}
	]
}`

func newTestWeatherAPI(t *testing.T, handler http.Handler) WeatherAPI {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := utils.NewHTTPClient()
	client.SetBaseURL(server.URL)

	return &wttrWeatherAPI{client: client, logger: logger.Nop()}
}

func TestWeatherFetch_Success(t *testing.T) {
	api := newTestWeatherAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Dubai", r.URL.Path)
		require.Equal(t, "j1", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(wttrDubaiJSON))
	}))

	data, err := api.Fetch(context.Background(), "Dubai, UAE")

	require.NoError(t, err)
	assert.Equal(t, 27, data.High)
	assert.Equal(t, 18, data.Low)
	assert.Equal(t, "Sunny", data.Condition)
	assert.Equal(t, "SUNNY", data.ConditionIcon)
	assert.Equal(t, "https://www.google.com/search?q=weather+Dubai%2C+UAE", data.ReportURL)
	assert.True(t, data.LastUpdated.IsZero(), "fetch must not stamp the cache timestamp")
}

func TestWeatherFetch_FallsBackToCurrentTemp(t *testing.T) {
	api := newTestWeatherAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current_condition": [{"temp_C": "21", "weatherDesc": [{"value": "Humid"}]}],
			"weather": [{"maxtempC": "", "mintempC": ""}]
		}`))
	}))

	data, err := api.Fetch(context.Background(), "Muscat, Oman")

	require.NoError(t, err)
	assert.Equal(t, 21, data.High)
	assert.Equal(t, 21, data.Low)
	assert.Equal(t, "HUMID", data.ConditionIcon)
}

func TestWeatherFetch_UnknownLocation(t *testing.T) {
	api := newTestWeatherAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for unknown location")
	}))

	_, err := api.Fetch(context.Background(), "Atlantis")

	require.ErrorIs(t, err, ErrUnknownLocation)
}

func TestWeatherFetch_UpstreamError(t *testing.T) {
	api := newTestWeatherAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := api.Fetch(context.Background(), "Nizwa, Oman")

	require.Error(t, err)
}

func TestWeatherFetch_MalformedPayload(t *testing.T) {
	api := newTestWeatherAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current_condition": [], "weather": []}`))
	}))

	_, err := api.Fetch(context.Background(), "Dubai, UAE")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weather data format")
}

func TestWeatherLocations(t *testing.T) {
	api := NewWttrWeatherAPI(logger.Nop())

	locations := api.Locations()

	assert.Equal(t, []string{
		"Abu Dhabi, UAE",
		"Dubai, UAE",
		"Jebel Akhdar, Oman",
		"Muscat, Oman",
		"Nizwa, Oman",
		"Wahiba Sands, Oman",
	}, locations)
}
