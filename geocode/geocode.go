package geocode

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	initErr    error
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			initErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, initErr = maps.NewClient(maps.WithAPIKey(apiKey))
		if initErr != nil {
			log.Printf("Failed to create maps client: %v", initErr)
		}
	})
	return mapsClient, initErr
}

// GeocodeCity resolves a free-text city name to coordinates. Used for
// chat queries that mention a place outside the fixed city registry.
func GeocodeCity(city string) (lat, lon float64, formatted string, err error) {
	client, err := InitMapsClient()
	if err != nil {
		return 0, 0, "", err
	}

	req := &maps.GeocodingRequest{
		Address: city,
	}

	results, err := client.Geocode(context.Background(), req)
	if err != nil {
		return 0, 0, "", err
	}
	if len(results) == 0 {
		return 0, 0, "", fmt.Errorf("no geocode results for %q", city)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, results[0].FormattedAddress, nil
}
