package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go-surgesense/types"
)

const (
	forecastURL   = "https://api.open-meteo.com/v1/forecast"
	airQualityURL = "https://air-quality-api.open-meteo.com/v1/air-quality"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

type airQualityResponse struct {
	Current struct {
		USAQI       *float64 `json:"us_aqi"`
		EuropeanAQI *float64 `json:"european_aqi"`
	} `json:"current"`
}

func getJSON(endpoint string, params url.Values, out interface{}) error {
	resp, err := httpClient.Get(endpoint + "?" + params.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("open-meteo returned status: " + resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CurrentWeather fetches the current temperature and humidity at
// lat/lon from open-meteo.
func CurrentWeather(lat, lon float64) (temperature, humidity float64, description string, err error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
	params.Set("timezone", "auto")

	var data forecastResponse
	if err = getJSON(forecastURL, params, &data); err != nil {
		return 0, 0, "", err
	}
	return data.Current.Temperature, data.Current.Humidity, describeWeatherCode(data.Current.WeatherCode), nil
}

// CurrentAQI fetches the current AQI at lat/lon, preferring the US
// scale and falling back to the European one.
func CurrentAQI(lat, lon float64) (int, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("current", "us_aqi,european_aqi")
	params.Set("timezone", "auto")

	var data airQualityResponse
	if err := getJSON(airQualityURL, params, &data); err != nil {
		return 0, err
	}
	if data.Current.USAQI != nil {
		return int(*data.Current.USAQI), nil
	}
	if data.Current.EuropeanAQI != nil {
		return int(*data.Current.EuropeanAQI), nil
	}
	return 0, errors.New("no AQI value in open-meteo response")
}

// ResolveEnvironment builds an environmental reading for lat/lon. A
// weather failure is an error the caller recovers from with the default
// reading; an AQI failure alone degrades to the default AQI, matching
// the weather being the primary signal.
func ResolveEnvironment(lat, lon float64) (types.EnvironmentalReading, error) {
	temperature, humidity, description, err := CurrentWeather(lat, lon)
	if err != nil {
		return types.EnvironmentalReading{}, fmt.Errorf("weather lookup failed: %w", err)
	}

	aqi, err := CurrentAQI(lat, lon)
	if err != nil {
		aqi = types.DefaultAQI
	}

	return types.EnvironmentalReading{
		Temperature: temperature,
		Humidity:    humidity,
		AQI:         aqi,
		AQICategory: types.ClassifyAQI(aqi),
		Description: description,
		ObservedAt:  time.Now(),
	}, nil
}

// describeWeatherCode maps the WMO weather code groups open-meteo
// returns to a short description.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 3:
		return "partly cloudy"
	case code <= 48:
		return "foggy"
	case code <= 67:
		return "rainy"
	case code <= 77:
		return "snowy"
	case code <= 82:
		return "rain showers"
	case code <= 99:
		return "thunderstorm"
	default:
		return "moderate"
	}
}
