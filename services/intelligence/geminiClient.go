// File: services/intelligence/geminiClient.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"schedly/models"
)

const systemPrompt = `You are an AI calendar assistant that helps users book appointments. You can:
1. Check calendar availability
2. Suggest time slots
3. Book appointments
4. Handle scheduling conflicts

Always respond in a helpful, conversational manner. When booking appointments,
gather all necessary information: title, date, time, duration, and description.

Respond with JSON in this format:
{
    "message": "your conversational response",
    "action": "check_availability|book_appointment|suggest_times|general_chat",
    "parameters": {
        "date": "YYYY-MM-DD",
        "time": "HH:MM",
        "duration": 60,
        "title": "Meeting Title",
        "description": "Meeting description"
    },
    "context": {
        "pending_booking": {},
        "last_query": "...",
        "user_intent": "..."
    }
}`

// GeminiExtractor asks Gemini to interpret the user's utterance against the
// structured intent schema.
type GeminiExtractor struct {
	model *genai.GenerativeModel
}

// NewGeminiExtractor builds the Gemini-backed extractor.
func NewGeminiExtractor(apiKey, modelName string) *GeminiExtractor {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	return &GeminiExtractor{model: model}
}

// Extract sends the system prompt, serialized prior context and the raw
// utterance, then decodes the response. Malformed output degrades to general
// chat; only transport failures surface as errors.
func (g *GeminiExtractor) Extract(ctx context.Context, userMessage string, conv models.ConversationContext) (*models.Intent, error) {
	prompt := buildPrompt(userMessage, conv)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}

	return DecodeIntent(sb.String(), conv), nil
}

func buildPrompt(userMessage string, conv models.ConversationContext) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)

	if ctxJSON, err := json.Marshal(conv); err == nil && string(ctxJSON) != "{}" {
		sb.WriteString("\n\nPrevious context: ")
		sb.Write(ctxJSON)
	}

	sb.WriteString("\n\nUser: ")
	sb.WriteString(userMessage)
	return sb.String()
}
