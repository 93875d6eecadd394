package repository

import (
	"context"

	"telegramNewsBot/internal/domain/entity"
)

// TransformerRepository は公開用のコンテンツ変換を提供するインターフェース。
// 各メソッドは独立したオラクル呼び出しで、個別に失敗し得ます。
type TransformerRepository interface {
	AnalyzeSentiment(ctx context.Context, content string) (*entity.SentimentAnalysis, error)
	Summarize(ctx context.Context, content string) (*entity.ContentSummary, error)
	Enhance(ctx context.Context, content string) (*entity.EnhancedContent, error)

	// Translate は組み立て済みメッセージ全体を対象言語へ翻訳します
	Translate(ctx context.Context, text, language string) (*entity.Translation, error)

	AnalyzeImage(ctx context.Context, imageURL string) (*entity.ImageAnalysis, error)
	OptimizeCaption(ctx context.Context, analysis *entity.ImageAnalysis, text string) (*entity.ImageCaption, error)
}
