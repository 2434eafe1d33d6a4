package agents

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const landingFallback = "Hi! I'm here to help with quick wellness tips. " +
	"Ask me about sleep, stress, skin, or healthy habits."

var greetingWords = []string{"hi", "hello", "hey", "hii", "hi!", "hello!", "hey!"}

var seriousSymptoms = []string{
	"chest pain", "difficulty breathing", "confusion", "high fever",
	"severe bleeding", "fainting", "stroke", "heart attack", "can't breathe",
	"unconscious", "severe headache", "numbness", "paralysis",
}

var weatherKeywords = []string{
	"weather", "temperature", "heat", "cold", "humidity", "climate",
	"outside", "hot", "warm", "cool", "sunny", "rainy", "windy",
}

const landingSystemPrompt = `You are a friendly wellness assistant for the landing page.

RULES:
- Always reply in plain text only.
- Your response MUST be between 1 and 3 sentences, under about 50 words.
- No lists, no headings, no markdown.
- If the user asks for a detailed plan, give a two-sentence summary and offer the detailed plan.
- Focus on sleep, skincare, hydration, stress, and general wellbeing.
- If the question mentions weather or climate, you may add one short weather-related tip.
- If the message sounds life-threatening, reply in ONE sentence telling them to seek medical help.`

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// GenerateLandingResponse produces a short wellness reply for
// unauthenticated landing-page users. Greetings and serious symptoms
// short-circuit without a model call; any model failure falls back to a
// canned reply.
func GenerateLandingResponse(client *openai.Client, message string, lat, lon float64) string {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, g := range greetingWords {
		if lower == g {
			return "Hi! How can I help you today?"
		}
	}

	if containsAny(lower, seriousSymptoms) {
		log.Println("Landing agent: serious symptoms detected")
		return "Your symptoms sound serious. Please log in to get proper care and see nearby clinics."
	}

	if client == nil {
		return landingFallback
	}

	userPrompt := fmt.Sprintf("User message: %s\n\nRespond in 1-3 short sentences only. Be concise and friendly.", message)
	if containsAny(lower, weatherKeywords) && lat != 0 && lon != 0 {
		userPrompt = fmt.Sprintf(
			"User message: %s\nUser location: %f, %f\n\nRespond in 1-3 short sentences. Include at most one brief weather-related tip if helpful.",
			message, lat, lon)
	}

	resp, err := client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: landingSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			MaxTokens: 120,
		},
	)
	if err != nil {
		log.Printf("Landing agent error: %v", err)
		return landingFallback
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
