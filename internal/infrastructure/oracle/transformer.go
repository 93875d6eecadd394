package oracle

import (
	"context"
	"fmt"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"
)

type transformer struct {
	client Client
}

func NewTransformer(client Client) repository.TransformerRepository {
	return &transformer{client: client}
}

func (t *transformer) AnalyzeSentiment(ctx context.Context, content string) (*entity.SentimentAnalysis, error) {
	return complete[entity.SentimentAnalysis](ctx, t.client, "sentiment", sentimentPrompt, content)
}

func (t *transformer) Summarize(ctx context.Context, content string) (*entity.ContentSummary, error) {
	return complete[entity.ContentSummary](ctx, t.client, "summary", summaryPrompt, content)
}

func (t *transformer) Enhance(ctx context.Context, content string) (*entity.EnhancedContent, error) {
	return complete[entity.EnhancedContent](ctx, t.client, "enhance", enhancePrompt, content)
}

func (t *transformer) Translate(ctx context.Context, text, language string) (*entity.Translation, error) {
	prompt := fmt.Sprintf(translatePromptFormat, entity.LanguageName(language))
	return complete[entity.Translation](ctx, t.client, "translate", prompt, text)
}

func (t *transformer) AnalyzeImage(ctx context.Context, imageURL string) (*entity.ImageAnalysis, error) {
	return complete[entity.ImageAnalysis](ctx, t.client, "image-analysis", imageAnalysisPrompt, imageURL)
}

func (t *transformer) OptimizeCaption(ctx context.Context, analysis *entity.ImageAnalysis, text string) (*entity.ImageCaption, error) {
	payload := map[string]interface{}{
		"imageAnalysis": analysis,
		"content":       text,
	}
	return complete[entity.ImageCaption](ctx, t.client, "caption", captionPrompt, payload)
}
