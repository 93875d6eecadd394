package rss

import (
	"context"
	"strings"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

type feedRepository struct {
	parser *gofeed.Parser
}

func NewFeedRepository() repository.FeedRepository {
	return &feedRepository{
		parser: gofeed.NewParser(),
	}
}

func (r *feedRepository) Fetch(ctx context.Context, url string) ([]*entity.FeedItem, error) {
	feed, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, &entity.FetchError{URL: url, Err: err}
	}

	items := make([]*entity.FeedItem, 0, len(feed.Items))

	for _, item := range feed.Items {
		if item.PublishedParsed == nil {
			continue
		}

		items = append(items, entity.NewFeedItem(
			item.Title,
			item.Description,
			item.Link,
			*item.PublishedParsed,
			extractImageURL(item),
		))
	}

	return items, nil
}

// extractImageURL は次の優先順で画像URLを解決します:
// media:content の url 属性、image/* タイプの enclosure、
// description 内の最初の <img src>。
func extractImageURL(item *gofeed.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if url := content.Attrs["url"]; url != "" {
				return url
			}
		}
	}

	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}

	return imageFromMarkup(item.Description)
}

func imageFromMarkup(markup string) string {
	if !strings.Contains(markup, "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	src, _ := doc.Find("img").First().Attr("src")
	return src
}
