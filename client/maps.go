package client

import (
	"fmt"
	"net/url"
)

// Travel modes для маршрутов
const (
	TravelModeDriving   = "driving"
	TravelModeWalking   = "walking"
	TravelModeBicycling = "bicycling"
	TravelModeTransit   = "transit"
)

// MapsLink возвращает deep link на маршрут до спота в Google Maps
func MapsLink(lat, lon float64, travelMode string) string {
	if travelMode == "" {
		travelMode = TravelModeDriving
	}

	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&destination=%f,%f&travelmode=%s",
		lat, lon, url.QueryEscape(travelMode),
	)
}
