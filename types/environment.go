package types

import "time"

// AQICategory is the US EPA band for an AQI value.
type AQICategory string

const (
	AQIGood                  AQICategory = "Good"
	AQIModerate              AQICategory = "Moderate"
	AQIUnhealthyForSensitive AQICategory = "Unhealthy for Sensitive Groups"
	AQIUnhealthy             AQICategory = "Unhealthy"
	AQIVeryUnhealthy         AQICategory = "Very Unhealthy"
	AQIHazardous             AQICategory = "Hazardous"
)

// aqiBreakpoint maps an upper AQI bound to its category.
type aqiBreakpoint struct {
	Max      int
	Category AQICategory
}

// US EPA breakpoints, evaluated top-down.
var aqiBreakpoints = []aqiBreakpoint{
	{50, AQIGood},
	{100, AQIModerate},
	{150, AQIUnhealthyForSensitive},
	{200, AQIUnhealthy},
	{300, AQIVeryUnhealthy},
}

// ClassifyAQI returns the EPA category for an AQI value.
func ClassifyAQI(aqi int) AQICategory {
	for _, bp := range aqiBreakpoints {
		if aqi <= bp.Max {
			return bp.Category
		}
	}
	return AQIHazardous
}

// EnvironmentalReading is a normalized snapshot of the conditions at a
// location. Constructed once per request and never mutated.
type EnvironmentalReading struct {
	Temperature float64     `json:"temperature"`
	Humidity    float64     `json:"humidity"`
	AQI         int         `json:"aqi"`
	AQICategory AQICategory `json:"aqi_category"`
	Description string      `json:"description"`
	ObservedAt  time.Time   `json:"timestamp"`
}

// Default reading values used whenever the weather or AQI provider is
// unreachable. The engine degrades to these instead of erroring.
const (
	DefaultTemperature = 25.0
	DefaultHumidity    = 60.0
	DefaultAQI         = 50
	DefaultDescription = "moderate"
)

// DefaultReading returns the documented fallback conditions.
func DefaultReading() EnvironmentalReading {
	return EnvironmentalReading{
		Temperature: DefaultTemperature,
		Humidity:    DefaultHumidity,
		AQI:         DefaultAQI,
		AQICategory: AQIGood,
		Description: DefaultDescription,
		ObservedAt:  time.Now(),
	}
}

// Coordinates is a lat/lon pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ValidCoordinates reports whether lat/lon are inside the valid ranges.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
