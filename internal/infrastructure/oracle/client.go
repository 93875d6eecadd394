package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"telegramNewsBot/internal/domain/entity"
)

// Client はAI補完オラクルへの1回の呼び出し。promptが指示、dataが任意の
// 構造化ペイロードで、応答は呼び出しごとのスキーマを持つJSONオブジェクト。
type Client interface {
	Complete(ctx context.Context, prompt string, data interface{}) (json.RawMessage, error)
}

// Config はオラクルプロバイダの設定
type Config struct {
	Provider  string // "endpoint", "gemini" or "bedrock" (empty defaults to "endpoint")
	URL       string // endpoint: 補完APIのURL
	APIKey    string
	Model     string
	Region    string // bedrock専用
	MaxTokens int
	Timeout   time.Duration
}

// NewClient はConfigに基づいてClientを生成します
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case "endpoint", "":
		return newEndpointClient(cfg)
	case "gemini":
		return newGeminiClient(ctx, cfg)
	case "bedrock":
		return newBedrockClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown oracle provider: %s", cfg.Provider)
	}
}

// complete はオラクル呼び出しと型付き復号の共通境界。失敗はすべて
// OracleErrorに包んで返します。
func complete[T any](ctx context.Context, c Client, call, prompt string, data interface{}) (*T, error) {
	raw, err := c.Complete(ctx, prompt, data)
	if err != nil {
		return nil, &entity.OracleError{Call: call, Err: err}
	}

	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &entity.OracleError{Call: call, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &result, nil
}

// promptWithData はチャット型プロバイダ向けにdataをプロンプトへ畳み込みます
func promptWithData(prompt string, data interface{}) (string, error) {
	if data == nil {
		return prompt, nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize data payload: %w", err)
	}

	return prompt + "\n\nData:\n" + string(encoded), nil
}

// extractJSON はモデルがコードフェンス等で囲んだ応答からJSON本体を取り出します
func extractJSON(text string) json.RawMessage {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return json.RawMessage(text)
}
