package oracle

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// geminiClient はGoogle Gemini APIを使用したオラクル実装。
// JSON応答を強制するためResponseMIMETypeを指定します。
type geminiClient struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

const geminiDefaultModel = "gemini-2.0-flash"

func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = geminiDefaultModel
	}

	maxTokens := int32(cfg.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 1024
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (c *geminiClient) Complete(ctx context.Context, prompt string, data interface{}) (json.RawMessage, error) {
	text, err := promptWithData(prompt, data)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(text), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.3),
		MaxOutputTokens:  c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}

	body := resp.Text()
	if body == "" {
		return nil, fmt.Errorf("empty response from Gemini API")
	}

	return extractJSON(body), nil
}
