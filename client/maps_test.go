package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spotshot-api/client"
)

// TestMapsLink проверяет deep link на маршрут
func TestMapsLink(t *testing.T) {
	link := client.MapsLink(48.8566, 2.3522, client.TravelModeWalking)

	assert.Contains(t, link, "https://www.google.com/maps/dir/?api=1")
	assert.Contains(t, link, "destination=48.856600,2.352200")
	assert.Contains(t, link, "travelmode=walking")
}

// TestMapsLink_DefaultMode: пустой режим означает driving
func TestMapsLink_DefaultMode(t *testing.T) {
	link := client.MapsLink(35.6586, 139.7454, "")

	assert.Contains(t, link, "travelmode=driving")
}
