package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// endpointClient は汎用の補完エンドポイント実装。
// {"prompt": ..., "data": ...} をPOSTし、応答ボディをそのまま
// 呼び出し側スキーマのJSONとして扱います。
type endpointClient struct {
	url    string
	apiKey string
	client *http.Client
}

func newEndpointClient(cfg Config) (Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("oracle endpoint URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &endpointClient{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}, nil
}

type completionRequest struct {
	Prompt string      `json:"prompt"`
	Data   interface{} `json:"data,omitempty"`
}

func (c *endpointClient) Complete(ctx context.Context, prompt string, data interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(completionRequest{Prompt: prompt, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return raw, nil
}
