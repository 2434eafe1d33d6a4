package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-surgesense/risk"
)

// CityRisk serves GET /api/cities/risk/:city.
func CityRisk(c *gin.Context, service *risk.Service) {
	cityName := c.Param("city")

	profile, err := service.ScoreCityRisk(cityName)
	if err != nil {
		var unknown risk.ErrUnknownCity
		if errors.As(err, &unknown) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "City '" + cityName + "' not found or data unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"city":    profile.City,
		"profile": profile,
	})
}

// ListCities serves GET /api/cities.
func ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cities":  risk.RegisteredCities(),
	})
}

// CompareCities serves GET /api/cities/compare?cities=a,b,c.
func CompareCities(c *gin.Context, service *risk.Service) {
	var cityNames []string
	if raw := c.Query("cities"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				cityNames = append(cityNames, trimmed)
			}
		}
	}

	comparison := service.CompareCities(cityNames)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"comparison": comparison,
	})
}
