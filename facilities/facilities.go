package facilities

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	overpassURL   = "https://overpass-api.de/api/interpreter"
	earthRadiusKM = 6371.0

	// Radius bounds accepted from callers.
	MinRadiusKM = 0.1
	MaxRadiusKM = 50.0
)

var httpClient = &http.Client{Timeout: 25 * time.Second}

// Facility is one medical facility near the query point.
type Facility struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKM float64 `json:"distance_km"`
}

type overpassResponse struct {
	Elements []struct {
		Lat    float64           `json:"lat"`
		Lon    float64           `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// FindNearby queries the Overpass API for hospitals, clinics and
// pharmacies within radiusKM of the point and returns them sorted by
// distance.
func FindNearby(lat, lon, radiusKM float64) ([]Facility, error) {
	if radiusKM < MinRadiusKM || radiusKM > MaxRadiusKM {
		return nil, fmt.Errorf("radius must be between %.1f and %.0f km", MinRadiusKM, MaxRadiusKM)
	}

	radiusM := int(radiusKM * 1000)
	query := fmt.Sprintf(`[out:json][timeout:20];
(
  node["amenity"~"hospital|clinic|pharmacy"](around:%d,%f,%f);
  way["amenity"~"hospital|clinic|pharmacy"](around:%d,%f,%f);
);
out center;`, radiusM, lat, lon, radiusM, lat, lon)

	resp, err := httpClient.PostForm(overpassURL, url.Values{"data": {query}})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("overpass returned status: " + resp.Status)
	}

	var data overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	var facilities []Facility
	for _, el := range data.Elements {
		fLat, fLon := el.Lat, el.Lon
		if el.Center != nil {
			fLat, fLon = el.Center.Lat, el.Center.Lon
		}
		if fLat == 0 && fLon == 0 {
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = "Unnamed " + el.Tags["amenity"]
		}

		dist := HaversineDistance(lat, lon, fLat, fLon)
		if dist > radiusKM {
			continue
		}

		facilities = append(facilities, Facility{
			Name:       name,
			Type:       el.Tags["amenity"],
			Lat:        fLat,
			Lon:        fLon,
			DistanceKM: math.Round(dist*100) / 100,
		})
	}

	sort.Slice(facilities, func(i, j int) bool {
		if facilities[i].DistanceKM != facilities[j].DistanceKM {
			return facilities[i].DistanceKM < facilities[j].DistanceKM
		}
		return strings.Compare(facilities[i].Name, facilities[j].Name) < 0
	})

	return facilities, nil
}

// HaversineDistance calculates the great-circle distance between two
// points on the earth (specified in decimal degrees).
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	radLat1 := lat1 * math.Pi / 180
	radLon1 := lon1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180
	radLon2 := lon2 * math.Pi / 180

	deltaLat := radLat2 - radLat1
	deltaLon := radLon2 - radLon1

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}
