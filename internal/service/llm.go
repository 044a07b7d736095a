package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pantrytoplate/backend/config"
	"github.com/pantrytoplate/backend/internal/types"
)

const (
	refererHeader = "https://pantrytoplate-api.onrender.com"
	titleHeader   = "PantryToPlate API"

	systemPrompt = "You are a helpful cooking assistant that creates recipes and meal plans. " +
		"Respond with a single JSON object and nothing else: no markdown, no prose."
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat-completion request to the OpenRouter API
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// LLMService handles interactions with the OpenRouter API
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	logger *zap.Logger
}

// NewLLMService creates a new LLMService instance. A missing API key is not an
// error here: it is surfaced per request so health checks stay available on a
// misconfigured deployment.
func NewLLMService(cfg *config.Config, logger *zap.Logger) *LLMService {
	return &LLMService{
		apiKey: cfg.OpenRouterAPIKey,
		apiURL: cfg.OpenRouterAPIURL,
		model:  cfg.OpenRouterModel,
		client: &http.Client{Timeout: cfg.LLMTimeout},
		logger: logger,
	}
}

// GenerateRecipes builds the prompt, issues one chat-completion request and
// extracts the structured document from the reply. Single shot: no retry, no
// cache, no partial results.
func (s *LLMService) GenerateRecipes(ctx context.Context, ingredients, dietaryRestrictions []string) (*types.GenerationResult, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(ingredients, dietaryRestrictions)},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("HTTP-Referer", refererHeader)
	req.Header.Set("X-Title", titleHeader)

	s.logger.Debug("calling chat-completion endpoint",
		zap.String("url", s.apiURL),
		zap.String("model", s.model))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var detail interface{}
		if err := json.Unmarshal(body, &detail); err != nil {
			detail = string(body)
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: detail}
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(completion.Choices) == 0 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: "no choices in response"}
	}

	content := completion.Choices[0].Message.Content
	s.logger.Debug("received completion", zap.Int("content_length", len(content)))

	return ExtractGenerationResult(content)
}
