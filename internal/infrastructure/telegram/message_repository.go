package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"
)

const defaultBaseURL = "https://api.telegram.org"

// ParseModeHTML と ParseModePlain が送信時の2つの整形モード
const (
	ParseModeHTML  = "HTML"
	ParseModePlain = ""
)

type Config struct {
	Token     string
	ChannelID string
	ParseMode string
	BaseURL   string
	Timeout   time.Duration
}

type messageRepository struct {
	baseURL   string
	token     string
	channelID string
	parseMode string
	client    *http.Client
}

func NewMessageRepository(cfg Config) repository.MessageRepository {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &messageRepository{
		baseURL:   baseURL,
		token:     cfg.Token,
		channelID: cfg.ChannelID,
		parseMode: cfg.ParseMode,
		client:    &http.Client{Timeout: timeout},
	}
}

func (r *messageRepository) SendMessage(ctx context.Context, text string) error {
	payload := map[string]interface{}{
		"chat_id": r.channelID,
		"text":    text,
	}
	if r.parseMode != ParseModePlain {
		payload["parse_mode"] = r.parseMode
	}

	return r.call(ctx, "sendMessage", payload)
}

func (r *messageRepository) SendPhoto(ctx context.Context, photoURL, caption string) error {
	payload := map[string]interface{}{
		"chat_id": r.channelID,
		"photo":   photoURL,
		"caption": caption,
	}
	if r.parseMode != ParseModePlain {
		payload["parse_mode"] = r.parseMode
	}

	return r.call(ctx, "sendPhoto", payload)
}

// apiResponse はBot APIの共通応答フォーマット
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

func (r *messageRepository) call(ctx context.Context, method string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &entity.PublishError{Op: method, Err: fmt.Errorf("failed to serialize payload: %w", err)}
	}

	url := fmt.Sprintf("%s/bot%s/%s", r.baseURL, r.token, method)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return &entity.PublishError{Op: method, Err: fmt.Errorf("failed to create HTTP request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return &entity.PublishError{Op: method, Err: err}
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return &entity.PublishError{Op: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if !apiResp.OK {
		return &entity.PublishError{
			Op:         method,
			StatusCode: apiResp.ErrorCode,
			Err:        errors.New(apiResp.Description),
		}
	}

	return nil
}
