package oracle

import (
	"context"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"
)

type analytics struct {
	client Client
}

func NewAnalytics(client Client) repository.AnalyticsRepository {
	return &analytics{client: client}
}

func (a *analytics) AnalyzeTrends(ctx context.Context, stats entity.RunStats) (*entity.ContentTrends, error) {
	return complete[entity.ContentTrends](ctx, a.client, "trends", trendsPrompt, statsPayload(stats))
}

func (a *analytics) OptimizeSchedule(ctx context.Context, stats entity.RunStats) (*entity.PostingSchedule, error) {
	return complete[entity.PostingSchedule](ctx, a.client, "schedule", schedulePrompt, statsPayload(stats))
}

func statsPayload(stats entity.RunStats) map[string]interface{} {
	return map[string]interface{}{
		"postCount":     stats.PostCount,
		"activeFeeds":   stats.ActiveFeeds,
		"uptimeSeconds": int(stats.Uptime.Seconds()),
	}
}
