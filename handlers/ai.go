package handlers

import (
	"log"
	"net/http"

	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-surgesense/agents"
	"go-surgesense/geocode"
	"go-surgesense/nlp"
	"go-surgesense/risk"
	"go-surgesense/surge"
	"go-surgesense/types"
)

type citizenRequest struct {
	Message    string   `json:"message"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	ReturnJSON bool     `json:"return_json"`
}

// resolveQueryCoordinates picks coordinates for a chat message: the
// request's own, a registry or geocoded city mentioned in the text, or
// the Mumbai default.
func resolveQueryCoordinates(request citizenRequest, langClient *language.Client) (float64, float64) {
	if request.Lat != nil && request.Lon != nil && types.ValidCoordinates(*request.Lat, *request.Lon) {
		return *request.Lat, *request.Lon
	}

	if langClient != nil {
		locations, err := nlp.ExtractLocations(langClient, request.Message)
		if err != nil {
			log.Printf("Entity extraction failed: %v", err)
		}
		for _, name := range locations {
			if city, ok := risk.LookupCity(name); ok {
				return city.Lat, city.Lon
			}
		}
		if len(locations) > 0 {
			if lat, lon, _, err := geocode.GeocodeCity(locations[0]); err == nil {
				return lat, lon
			}
		}
	}

	return defaultLat, defaultLon
}

// LandingResponse serves POST /landing-response and POST
// /citizen-response (the floating chatbot).
func LandingResponse(c *gin.Context, aiClient *openai.Client, langClient *language.Client) {
	var request citizenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	lat, lon := resolveQueryCoordinates(request, langClient)
	response := agents.GenerateLandingResponse(aiClient, request.Message, lat, lon)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": response,
		"location": types.Coordinates{Lat: lat, Lon: lon},
	})
}

// CitizenAI serves POST /citizenai, the authenticated citizen health
// plan endpoint.
func CitizenAI(c *gin.Context, aiClient *openai.Client, langClient *language.Client, surgeService *surge.Service) {
	var request citizenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	lat, lon := resolveQueryCoordinates(request, langClient)
	conditions := surgeService.CurrentConditions(lat, lon)
	response := agents.GenerateCitizenResponse(aiClient, request.Message, conditions, request.ReturnJSON)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"response":   response,
		"conditions": conditions,
	})
}

// HospitalAI serves POST /hospitalai, the operator query endpoint.
func HospitalAI(c *gin.Context, aiClient *openai.Client, surgeService *surge.Service) {
	var request struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	conditions := surgeService.CurrentConditions(defaultLat, defaultLon)
	response, err := agents.GenerateHospitalResponse(aiClient, request.Query, conditions)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Hospital intelligence agent temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": response,
	})
}
