package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go/auth/bearer"
)

// bedrockClient はAmazon Bedrock Converse APIを使用したオラクル実装
type bedrockClient struct {
	client    *bedrockruntime.Client
	modelID   string
	maxTokens int32
}

const bedrockSystemPrompt = `You are a JSON API. Respond with exactly one JSON object matching the schema in the user message. No prose, no markdown fences.`

func newBedrockClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("bedrock model ID is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("bedrock bearer token is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("bedrock region is required")
	}

	maxTokens := int32(cfg.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 1024
	}

	sdkConfig, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	sdkConfig.BearerAuthTokenProvider = bearer.NewTokenCache(bearer.StaticTokenProvider{
		Token: bearer.Token{Value: cfg.APIKey},
	})
	sdkConfig.AuthSchemePreference = []string{"httpBearerAuth"}

	return &bedrockClient{
		client:    bedrockruntime.NewFromConfig(sdkConfig),
		modelID:   cfg.Model,
		maxTokens: maxTokens,
	}, nil
}

func (c *bedrockClient) Complete(ctx context.Context, prompt string, data interface{}) (json.RawMessage, error) {
	text, err := promptWithData(prompt, data)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.modelID),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: text},
				},
			},
		},
		System: []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: bedrockSystemPrompt},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(c.maxTokens),
			Temperature: aws.Float32(0.3),
			TopP:        aws.Float32(0.9),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke bedrock model: %w", err)
	}

	body, err := converseText(resp)
	if err != nil {
		return nil, err
	}

	return extractJSON(body), nil
}

func converseText(resp *bedrockruntime.ConverseOutput) (string, error) {
	messageOutput, ok := resp.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("unexpected bedrock response output type: %T", resp.Output)
	}

	var builder strings.Builder
	for _, block := range messageOutput.Value.Content {
		textBlock, ok := block.(*types.ContentBlockMemberText)
		if !ok {
			continue
		}
		builder.WriteString(textBlock.Value)
	}

	body := strings.TrimSpace(builder.String())
	if body == "" {
		return "", fmt.Errorf("no text content in bedrock response")
	}
	return body, nil
}
