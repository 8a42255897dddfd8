package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spotshot-api/internal/config"
	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *zap.Logger
}

// NewGeocodeClient создает клиент обратного геокодирования
// поверх Mapbox Geocoding API
func NewGeocodeClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		logger:      logger,
	}
}

type geocodeFeature struct {
	PlaceType []string `json:"place_type"`
	Text      string   `json:"text"`
}

type geocodeResponse struct {
	Features []geocodeFeature `json:"features"`
}

// ReverseGeocode возвращает страну и город для координат.
// Из ответа берутся фичи place (город) и country.
func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	reqURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%f,%f.json?types=%s&access_token=%s",
		c.baseURL,
		lon, lat,
		url.QueryEscape("place,country"),
		c.accessToken,
	)

	c.logger.Debug("Calling geocoder",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoder returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geocoder error: status %d", resp.StatusCode)
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	addr := &domain.Address{}
	for _, f := range geoResp.Features {
		for _, pt := range f.PlaceType {
			switch pt {
			case "place":
				if addr.City == "" {
					addr.City = f.Text
				}
			case "country":
				if addr.Country == "" {
					addr.Country = f.Text
				}
			}
		}
	}

	return addr, nil
}
