package agents

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go-surgesense/types"
)

// EmergencyResponse is returned without a model call whenever the
// message mentions a critical symptom.
const EmergencyResponse = "EMERGENCY: Call emergency services immediately (108). Do not delay medical attention."

var criticalSymptoms = []string{
	"chest pain", "difficulty breathing", "unconscious", "bleeding",
	"high fever", "fainting", "can't breathe", "heart attack", "stroke",
}

const citizenSystemPrompt = `You are the SurgeSense Citizen Health Guide, a detailed health and wellness assistant.
You provide comprehensive, weather-aware health guidance.

Cover, in order: weather impact, diet plan with meal timings, foods to avoid,
traditional wellness tips, hydration plan, sleep guidance, clothing suggestions,
outdoor safety windows, mind-body wellness, and a short daily summary.
Base ALL advice on the weather data provided: temperature, humidity, AQI.
Use exact timings, quantities, and methods. Keep each point to one or two lines.`

const citizenJSONSystemPrompt = citizenSystemPrompt + `

Return ONLY a valid JSON object with these exact keys, no markdown, no extra text:
"weatherImpact", "dietPlan", "avoidThese", "ayurvedicTips", "hydrationPlan",
"sleepGuidance", "clothingSuggestions", "outdoorSafety", "mindBodyWellness",
"dailySummary". Every key except weatherImpact and dailySummary maps to an
array of 3-5 concise strings.`

// GenerateCitizenResponse produces a structured health plan for an
// authenticated citizen. Critical symptoms short-circuit to an
// emergency reply; model failures fall back to a rule-based plan built
// from the reading.
func GenerateCitizenResponse(client *openai.Client, message string, reading types.EnvironmentalReading, returnJSON bool) string {
	lower := strings.ToLower(message)
	if containsAny(lower, criticalSymptoms) {
		log.Println("Citizen agent: critical symptoms detected, returning emergency response")
		return EmergencyResponse
	}

	if client == nil {
		return citizenFallback(reading)
	}

	systemPrompt := citizenSystemPrompt
	if returnJSON {
		systemPrompt = citizenJSONSystemPrompt
	}

	resp, err := client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(
					"User question: %s\n\nCurrent weather: %.1f°C, %.0f%% humidity, AQI %d (%s), %s.",
					message, reading.Temperature, reading.Humidity, reading.AQI, reading.AQICategory, reading.Description)},
			},
			MaxTokens: 1200,
		},
	)
	if err != nil {
		log.Printf("Citizen agent error: %v", err)
		return citizenFallback(reading)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// citizenFallback builds a deterministic short plan from the reading
// when the model is unavailable.
func citizenFallback(reading types.EnvironmentalReading) string {
	var tips []string
	switch {
	case reading.Temperature > 32:
		tips = append(tips,
			"It is hot today - stay hydrated and avoid the outdoors between 11 AM and 4 PM.")
	case reading.Temperature < 15:
		tips = append(tips,
			"It is cold today - dress in warm layers and prefer warm fluids.")
	default:
		tips = append(tips, "Weather is comfortable today - a morning walk is a good idea.")
	}
	if reading.AQI > 150 {
		tips = append(tips, "Air quality is poor - wear an N95 mask outdoors and skip outdoor exercise.")
	} else if reading.AQI > 100 {
		tips = append(tips, "Air quality is moderate - limit prolonged outdoor activity.")
	}
	if reading.Humidity > 80 {
		tips = append(tips, "High humidity - wear breathable fabrics and stay cool.")
	}
	tips = append(tips, "Aim for 7-8 hours of sleep and 2-3 liters of water through the day.")
	return strings.Join(tips, " ")
}
