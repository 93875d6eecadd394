package repository

import (
	"context"

	"telegramNewsBot/internal/domain/entity"
)

// ClassifierRepository はコンテンツの事前チェックを提供するインターフェース
type ClassifierRepository interface {
	// AnalyzeAppropriateness はタイトル+本文の適切性を判定します
	AnalyzeAppropriateness(ctx context.Context, content string) (*entity.ContentAnalysis, error)

	// Fingerprint は重複検出用の意味的フィンガープリントを生成します
	Fingerprint(ctx context.Context, content string) (*entity.ContentFingerprint, error)
}
