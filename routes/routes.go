package routes

import (
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-surgesense/agents"
	"go-surgesense/db"
	"go-surgesense/handlers"
	"go-surgesense/risk"
	"go-surgesense/surge"
)

// SetupRouter wires every endpoint to its handler with the shared
// services injected.
func SetupRouter(
	store *db.Store,
	surgeService *surge.Service,
	riskService *risk.Service,
	agent *agents.Agent,
	aiClient *openai.Client,
	langClient *language.Client,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "SurgeSense API is running",
		})
	})

	// Auth
	r.POST("/login", func(c *gin.Context) { handlers.Login(c, store) })
	r.POST("/signup", func(c *gin.Context) { handlers.Signup(c, store) })

	// Advisory agents
	r.POST("/landing-response", func(c *gin.Context) { handlers.LandingResponse(c, aiClient, langClient) })
	r.POST("/citizen-response", func(c *gin.Context) { handlers.LandingResponse(c, aiClient, langClient) })
	r.POST("/citizenai", func(c *gin.Context) { handlers.CitizenAI(c, aiClient, langClient, surgeService) })
	r.POST("/hospitalai", func(c *gin.Context) { handlers.HospitalAI(c, aiClient, surgeService) })

	// Citizen location services
	r.GET("/citizen/nearby-facilities", handlers.NearbyFacilities)

	// Surge prediction
	surgeAPI := r.Group("/api/surge")
	{
		surgeAPI.GET("/prediction", func(c *gin.Context) { handlers.SurgePrediction(c, surgeService) })
		surgeAPI.POST("/prediction", func(c *gin.Context) { handlers.SurgePredictionPost(c, surgeService) })
		surgeAPI.GET("/weather-alerts", func(c *gin.Context) { handlers.WeatherAlerts(c, surgeService) })
	}

	// Multi-city health risk
	cities := r.Group("/api/cities")
	{
		cities.GET("", handlers.ListCities)
		cities.GET("/risk/:city", func(c *gin.Context) { handlers.CityRisk(c, riskService) })
		cities.GET("/compare", func(c *gin.Context) { handlers.CompareCities(c, riskService) })
	}

	// Autonomous agent
	r.GET("/api/autonomous-agent/status", func(c *gin.Context) { handlers.AgentStatus(c, agent) })
	r.POST("/api/autonomous-agent/action", func(c *gin.Context) { handlers.AgentAction(c, agent) })
	r.GET("/api/autonomous/analysis", func(c *gin.Context) { handlers.AgentAnalysis(c, agent) })
	r.GET("/api/autonomous/check", func(c *gin.Context) { handlers.AgentCheck(c, agent) })

	// Hospital management
	hospital := r.Group("/hospital")
	{
		hospital.GET("/staff", func(c *gin.Context) { handlers.ListStaff(c, store) })
		hospital.POST("/staff", func(c *gin.Context) { handlers.AddStaff(c, store) })
		hospital.GET("/inventory", func(c *gin.Context) { handlers.ListInventory(c, store) })
		hospital.POST("/inventory", func(c *gin.Context) { handlers.UpsertInventory(c, store) })
		hospital.GET("/decisions", func(c *gin.Context) { handlers.ListDecisions(c, store) })
		hospital.POST("/decisions", func(c *gin.Context) { handlers.LogDecision(c, store) })
		hospital.GET("/settings", func(c *gin.Context) { handlers.GetSettings(c, store) })
		hospital.PUT("/settings", func(c *gin.Context) { handlers.SaveSettings(c, store) })
	}

	return r
}
