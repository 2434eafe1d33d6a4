package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-surgesense/facilities"
	"go-surgesense/types"
)

// NearbyFacilities serves GET /citizen/nearby-facilities.
func NearbyFacilities(c *gin.Context) {
	lat, lon, ok := parseCoordinates(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid coordinates provided",
		})
		return
	}

	radiusKM := 5.0
	if raw := c.Query("radius_km"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid radius"})
			return
		}
		radiusKM = v
	}
	if radiusKM < facilities.MinRadiusKM || radiusKM > facilities.MaxRadiusKM {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Radius must be between 0.1 and 50 km",
		})
		return
	}

	found, err := facilities.FindNearby(lat, lon, radiusKM)
	if err != nil {
		log.Printf("Nearby facilities error: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"success":       false,
			"message":       "Unable to fetch nearby facilities",
			"user_location": types.Coordinates{Lat: lat, Lon: lon},
			"radius_km":     radiusKM,
			"facilities":    []facilities.Facility{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Found " + strconv.Itoa(len(found)) + " facilities within range",
		"user_location": types.Coordinates{Lat: lat, Lon: lon},
		"radius_km":     radiusKM,
		"facilities":    found,
	})
}
