package agents

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go-surgesense/types"
)

const hospitalSystemPrompt = `You are the SurgeSense Hospital Operations Intelligence Agent.

Your job is to analyze current weather conditions and predict operational healthcare needs.

You MUST return ONLY valid JSON with weather-based recommendations:

{
  "weather_analysis": {
    "temperature": number,
    "humidity": number,
    "conditions": "string",
    "health_impact": "string"
  },
  "recommendations": [
    {
      "title": "string",
      "description": "string",
      "priority": "high|medium|low",
      "category": "respiratory|heat|air_quality"
    }
  ],
  "surge_prediction": {
    "expected_cases": number,
    "peak_hours": ["string"],
    "risk_level": "Low|Moderate|High"
  }
}

RULES:
1. Base predictions on the actual weather data provided
2. High temp (>30°C) = heat-related cases
3. High humidity (>70%) = respiratory/skin issues
4. Cold (<15°C) = respiratory infections
5. Return ONLY valid JSON, no extra text`

// GenerateHospitalResponse answers hospital operator queries with
// JSON operations recommendations grounded in the live reading.
func GenerateHospitalResponse(client *openai.Client, query string, reading types.EnvironmentalReading) (string, error) {
	if client == nil {
		return "", fmt.Errorf("hospital agent unavailable: no OpenAI client configured")
	}

	userPrompt := fmt.Sprintf(
		"Current Weather Data: Temperature: %.1f°C, Humidity: %.0f%%, Conditions: %s, AQI: %d (%s). Query: %s. "+
			"Generate hospital recommendations based on this live weather and air quality data.",
		reading.Temperature, reading.Humidity, reading.Description, reading.AQI, reading.AQICategory, query)

	resp, err := client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: hospitalSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			MaxTokens: 800,
		},
	)
	if err != nil {
		log.Printf("Hospital agent error: %v", err)
		return "", err
	}

	return stripCodeFence(resp.Choices[0].Message.Content), nil
}

// stripCodeFence removes a markdown code fence the model sometimes
// wraps JSON in.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
