package oracle

import (
	"context"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"
)

type classifier struct {
	client Client
}

func NewClassifier(client Client) repository.ClassifierRepository {
	return &classifier{client: client}
}

func (c *classifier) AnalyzeAppropriateness(ctx context.Context, content string) (*entity.ContentAnalysis, error) {
	return complete[entity.ContentAnalysis](ctx, c.client, "appropriateness", appropriatenessPrompt, content)
}

func (c *classifier) Fingerprint(ctx context.Context, content string) (*entity.ContentFingerprint, error) {
	return complete[entity.ContentFingerprint](ctx, c.client, "fingerprint", fingerprintPrompt, content)
}
