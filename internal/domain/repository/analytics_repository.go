package repository

import (
	"context"

	"telegramNewsBot/internal/domain/entity"
)

// AnalyticsRepository は稼働統計からの傾向分析を提供するインターフェース。
// 結果はログ出力のみに使われ、失敗してもパイプラインには影響しません。
type AnalyticsRepository interface {
	AnalyzeTrends(ctx context.Context, stats entity.RunStats) (*entity.ContentTrends, error)
	OptimizeSchedule(ctx context.Context, stats entity.RunStats) (*entity.PostingSchedule, error)
}
