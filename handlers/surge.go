package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-surgesense/surge"
	"go-surgesense/types"
)

// Default city used when a request supplies no coordinates.
const (
	defaultCity = "Mumbai"
	defaultLat  = 19.0760
	defaultLon  = 72.8777
)

// parseCoordinates reads lat/lon query params, defaulting to Mumbai.
// The bool is false when a supplied value is malformed or out of range.
func parseCoordinates(c *gin.Context) (lat, lon float64, ok bool) {
	lat, lon = defaultLat, defaultLon

	if raw := c.Query("lat"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, 0, false
		}
		lat = v
	}
	if raw := c.Query("lon"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, 0, false
		}
		lon = v
	}

	if !types.ValidCoordinates(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

// SurgePrediction serves GET /api/surge/prediction.
func SurgePrediction(c *gin.Context, service *surge.Service) {
	city := c.DefaultQuery("city", defaultCity)

	lat, lon, ok := parseCoordinates(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid coordinates provided",
		})
		return
	}

	report := service.GenerateSurgeReport(lat, lon)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"city":       city,
		"prediction": report,
		"timestamp":  report.GeneratedAt,
	})
}

// SurgePredictionPost serves POST /api/surge/prediction.
func SurgePredictionPost(c *gin.Context, service *surge.Service) {
	var request struct {
		City string   `json:"city"`
		Lat  *float64 `json:"lat"`
		Lon  *float64 `json:"lon"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	city := request.City
	if city == "" {
		city = defaultCity
	}
	lat, lon := defaultLat, defaultLon
	if request.Lat != nil && request.Lon != nil {
		lat, lon = *request.Lat, *request.Lon
	}
	if !types.ValidCoordinates(lat, lon) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid coordinates provided"})
		return
	}

	report := service.GenerateSurgeReport(lat, lon)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"city":       city,
		"prediction": report,
		"timestamp":  report.GeneratedAt,
	})
}

// WeatherAlerts serves GET /api/surge/weather-alerts.
func WeatherAlerts(c *gin.Context, service *surge.Service) {
	city := c.DefaultQuery("city", defaultCity)

	lat, lon, ok := parseCoordinates(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid coordinates provided",
		})
		return
	}

	conditions := service.CurrentConditions(lat, lon)
	alerts := surge.WeatherAlerts(conditions)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"city":    city,
		"weather": conditions,
		"alerts":  alerts,
	})
}
