package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-surgesense/risk"
	"go-surgesense/surge"
	"go-surgesense/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testWeekday = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

func stubSurgeService(r types.EnvironmentalReading) *surge.Service {
	s := surge.NewService(func(lat, lon float64) (types.EnvironmentalReading, error) {
		return r, nil
	})
	s.Now = func() time.Time { return testWeekday }
	return s
}

func stubRiskService(r types.EnvironmentalReading) *risk.Service {
	s := risk.NewService(func(lat, lon float64) (types.EnvironmentalReading, error) {
		return r, nil
	})
	s.Now = func() time.Time { return testWeekday }
	return s
}

func hotReading() types.EnvironmentalReading {
	return types.EnvironmentalReading{
		Temperature: 36,
		Humidity:    50,
		AQI:         80,
		AQICategory: types.ClassifyAQI(80),
	}
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSurgePredictionHandler(t *testing.T) {
	service := stubSurgeService(hotReading())
	r := gin.New()
	r.GET("/api/surge/prediction", func(c *gin.Context) { SurgePrediction(c, service) })

	w := doRequest(r, http.MethodGet, "/api/surge/prediction?city=Delhi&lat=28.6139&lon=77.2090", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success    bool              `json:"success"`
		City       string            `json:"city"`
		Prediction types.SurgeReport `json:"prediction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Delhi", body.City)
	assert.Equal(t, 1.4, body.Prediction.OverallMultiplier)
	assert.Equal(t, types.SurgeRiskModerate, body.Prediction.RiskLevel)
}

func TestSurgePredictionDefaultsToMumbai(t *testing.T) {
	service := stubSurgeService(hotReading())
	r := gin.New()
	r.GET("/api/surge/prediction", func(c *gin.Context) { SurgePrediction(c, service) })

	w := doRequest(r, http.MethodGet, "/api/surge/prediction", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"city":"Mumbai"`)
}

func TestSurgePredictionRejectsBadCoordinates(t *testing.T) {
	service := stubSurgeService(hotReading())
	r := gin.New()
	r.GET("/api/surge/prediction", func(c *gin.Context) { SurgePrediction(c, service) })

	for _, target := range []string{
		"/api/surge/prediction?lat=abc",
		"/api/surge/prediction?lat=91",
		"/api/surge/prediction?lon=-181",
	} {
		w := doRequest(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestSurgePredictionPostHandler(t *testing.T) {
	service := stubSurgeService(hotReading())
	r := gin.New()
	r.POST("/api/surge/prediction", func(c *gin.Context) { SurgePredictionPost(c, service) })

	w := doRequest(r, http.MethodPost, "/api/surge/prediction", `{"city":"Pune","lat":18.5204,"lon":73.8567}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"city":"Pune"`)

	w = doRequest(r, http.MethodPost, "/api/surge/prediction", `{"lat":95,"lon":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeatherAlertsHandler(t *testing.T) {
	service := stubSurgeService(types.EnvironmentalReading{Temperature: 38, Humidity: 50, AQI: 220, AQICategory: types.ClassifyAQI(220)})
	r := gin.New()
	r.GET("/api/surge/weather-alerts", func(c *gin.Context) { WeatherAlerts(c, service) })

	w := doRequest(r, http.MethodGet, "/api/surge/weather-alerts", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool               `json:"success"`
		Alerts  []types.SurgeAlert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Alerts, 2)
}

func TestCityRiskHandler(t *testing.T) {
	service := stubRiskService(hotReading())
	r := gin.New()
	r.GET("/api/cities/risk/:city", func(c *gin.Context) { CityRisk(c, service) })

	w := doRequest(r, http.MethodGet, "/api/cities/risk/Mumbai", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"city":"Mumbai"`)

	w = doRequest(r, http.MethodGet, "/api/cities/risk/Atlantis", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestCompareCitiesHandler(t *testing.T) {
	service := stubRiskService(hotReading())
	r := gin.New()
	r.GET("/api/cities/compare", func(c *gin.Context) { CompareCities(c, service) })

	w := doRequest(r, http.MethodGet, "/api/cities/compare?cities=Mumbai,%20Delhi", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success    bool                 `json:"success"`
		Comparison types.CityComparison `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Comparison.CitiesAnalyzed)
	require.NotNil(t, body.Comparison.Summary)

	// Unknown-only comparisons degrade to the no-data message.
	w = doRequest(r, http.MethodGet, "/api/cities/compare?cities=Atlantis", "")
	require.Equal(t, http.StatusOK, w.Code)
	// Reset before decoding: Unmarshal leaves fields absent from the JSON
	// (like the omitted summary) at their previous values.
	body.Comparison = types.CityComparison{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Comparison.CitiesAnalyzed)
	assert.Equal(t, "No city data available", body.Comparison.Message)
	assert.Nil(t, body.Comparison.Summary)
}

func TestListCitiesHandler(t *testing.T) {
	r := gin.New()
	r.GET("/api/cities", ListCities)

	w := doRequest(r, http.MethodGet, "/api/cities", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool         `json:"success"`
		Cities  []types.City `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Cities, 10)
}
