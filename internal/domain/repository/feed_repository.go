package repository

import (
	"context"

	"telegramNewsBot/internal/domain/entity"
)

type FeedRepository interface {
	Fetch(ctx context.Context, url string) ([]*entity.FeedItem, error)
}
