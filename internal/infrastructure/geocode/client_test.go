package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spotshot-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_ReverseGeocode(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "2.349014,48.864716")

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(geocodeResponse{
				Features: []geocodeFeature{
					{PlaceType: []string{"place"}, Text: "Paris"},
					{PlaceType: []string{"country"}, Text: "France"},
				},
			})
		}))
		defer server.Close()

		cfg := &config.GeocoderConfig{
			BaseURL:        server.URL,
			AccessToken:    "test_token",
			RequestTimeout: 5,
		}

		client := NewGeocodeClient(cfg, logger)

		addr, err := client.ReverseGeocode(context.Background(), 48.864716, 2.349014)

		require.NoError(t, err)
		assert.Equal(t, "France", addr.Country)
		assert.Equal(t, "Paris", addr.City)
	})

	t.Run("no features found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(geocodeResponse{})
		}))
		defer server.Close()

		cfg := &config.GeocoderConfig{
			BaseURL:        server.URL,
			AccessToken:    "test_token",
			RequestTimeout: 5,
		}

		client := NewGeocodeClient(cfg, logger)

		addr, err := client.ReverseGeocode(context.Background(), 0, 0)

		require.NoError(t, err)
		assert.Empty(t, addr.Country)
		assert.Empty(t, addr.City)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		cfg := &config.GeocoderConfig{
			BaseURL:        server.URL,
			AccessToken:    "bad_token",
			RequestTimeout: 5,
		}

		client := NewGeocodeClient(cfg, logger)

		addr, err := client.ReverseGeocode(context.Background(), 48.8, 2.3)

		assert.Error(t, err)
		assert.Nil(t, addr)
	})
}
