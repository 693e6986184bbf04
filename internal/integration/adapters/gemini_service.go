package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiService implements adapter.CategorySuggester using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks the model to pick one of the offered categories for a bill item.
func (s *GeminiService) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseSuggestion(text)
}

func buildSuggestionPrompt(request adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You classify household expenses. Pick the single category that best fits the bill item below.
Only choose from the listed categories and answer with their exact ID.

CATEGORIES:
`)
	for _, c := range request.Categories {
		fmt.Fprintf(&sb, "- ID: %s, Name: %s", c.ID, c.Name)
		if c.Description != "" {
			fmt.Fprintf(&sb, ", Description: %s", c.Description)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nBILL ITEM:\n- Name: %q\n", request.ItemName)
	if request.ItemDescription != "" {
		fmt.Fprintf(&sb, "- Description: %q\n", request.ItemDescription)
	}

	sb.WriteString(`
Respond with one JSON object and nothing else:
{"category_id": "<uuid from the list>", "confidence": 0.0-1.0, "reasoning": "one short sentence"}
`)
	return sb.String()
}

// geminiSuggestion is the raw JSON answer.
type geminiSuggestion struct {
	CategoryID string  `json:"category_id"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

// parseSuggestion decodes the model's answer, tolerating markdown fences.
// An unparsable category id yields uuid.Nil, which callers treat as unknown.
func parseSuggestion(text string) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	categoryID, err := uuid.Parse(strings.TrimSpace(raw.CategoryID))
	if err != nil {
		categoryID = uuid.Nil
	}

	return &adapter.CategorySuggestion{
		CategoryID: categoryID,
		Confidence: raw.Confidence,
		Reasoning:  raw.Reasoning,
	}, nil
}
