package llm

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go-lexicon/internal/config"
	"go-lexicon/internal/definition"

	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

var (
	ErrNoCandidates = errors.New("generation returned no candidates")
	ErrBlocked      = errors.New("generation stopped without an answer")
	ErrEmptyText    = errors.New("generation returned no text")
)

// blockedFinishReasons end a candidate without usable text.
var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:            true,
	genai.FinishReasonRecitation:        true,
	genai.FinishReasonLanguage:          true,
	genai.FinishReasonBlocklist:         true,
	genai.FinishReasonProhibitedContent: true,
	genai.FinishReasonSPII:              true,
}

// contentModels is the part of *genai.Models the client depends on.
type contentModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient generates schema-constrained JSON text with a Gemini model.
// It is built once at startup and shared by all requests.
type GeminiClient struct {
	models contentModels
	model  string
	gen    *genai.GenerateContentConfig
}

// NewGeminiClient creates a client for the configured model and schema.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, schema definition.Schema) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	log.Printf("[LLM] Gemini client ready (model: %s)", cfg.Model)
	return newGeminiClient(client.Models, cfg.Model, schema), nil
}

func newGeminiClient(models contentModels, model string, schema definition.Schema) *GeminiClient {
	return &GeminiClient{
		models: models,
		model:  model,
		gen: &genai.GenerateContentConfig{
			ResponseMIMEType: jsonMIMEType,
			ResponseSchema:   ToGenAISchema(schema),
		},
	}
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.model
}

// Generate makes exactly one GenerateContent call and returns the response text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), c.gen)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked (%s)", ErrNoCandidates, resp.PromptFeedback.BlockReason)
		}
		return "", ErrNoCandidates
	}
	if reason := resp.Candidates[0].FinishReason; blockedFinishReasons[reason] {
		return "", fmt.Errorf("%w (finish reason %s)", ErrBlocked, reason)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}
