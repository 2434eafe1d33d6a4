package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-surgesense/agents"
	"go-surgesense/cronjobs"
	"go-surgesense/db"
	"go-surgesense/geocode"
	"go-surgesense/nlp"
	"go-surgesense/risk"
	"go-surgesense/routes"
	"go-surgesense/surge"
	"go-surgesense/weather"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Firestore is optional; the store falls back to in-memory data.
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Printf("Firestore unavailable, using in-memory store: %v", err)
	} else {
		defer db.CloseFirestore()
	}
	store := db.NewStore(firestoreClient)

	var aiClient *openai.Client
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		aiClient = openai.NewClient(key)
	} else {
		log.Println("OPENAI_API_KEY not set, AI responses use fallbacks")
	}

	langClient, err := nlp.InitLanguageClient()
	if err != nil {
		log.Printf("Natural Language unavailable, location extraction disabled: %v", err)
	} else {
		defer nlp.CloseLanguageClient()
	}

	if _, err := geocode.InitMapsClient(); err != nil {
		log.Printf("Maps unavailable, city geocoding disabled: %v", err)
	}

	surgeService := surge.NewService(weather.ResolveEnvironment)
	riskService := risk.NewService(weather.ResolveEnvironment)
	agent := agents.NewAgent(aiClient, surgeService)

	scheduler := cronjobs.InitCronJobs(agent)
	defer scheduler.Stop()

	r := routes.SetupRouter(store, surgeService, riskService, agent, aiClient, langClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("SurgeSense listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
