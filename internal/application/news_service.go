package application

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"
	"telegramNewsBot/internal/infrastructure/scraper"
)

// descriptionが短すぎる場合に記事本文の取得を試みる閾値
const minDescriptionLength = 100

type NewsService struct {
	feedRepo        repository.FeedRepository
	messageRepo     repository.MessageRepository
	classifier      repository.ClassifierRepository
	transformer     repository.TransformerRepository
	fingerprints    repository.FingerprintRepository
	contentFetcher  scraper.ContentFetcher
	defaultLanguage string
	publishDelay    time.Duration
}

type NewsServiceConfig struct {
	DefaultLanguage string
	PublishDelay    time.Duration
}

func NewNewsService(
	feedRepo repository.FeedRepository,
	messageRepo repository.MessageRepository,
	classifier repository.ClassifierRepository,
	transformer repository.TransformerRepository,
	fingerprints repository.FingerprintRepository,
	contentFetcher scraper.ContentFetcher,
	cfg NewsServiceConfig,
) *NewsService {
	defaultLanguage := cfg.DefaultLanguage
	if defaultLanguage == "" {
		defaultLanguage = entity.DefaultLanguage
	}

	return &NewsService{
		feedRepo:        feedRepo,
		messageRepo:     messageRepo,
		classifier:      classifier,
		transformer:     transformer,
		fingerprints:    fingerprints,
		contentFetcher:  contentFetcher,
		defaultLanguage: defaultLanguage,
		publishDelay:    cfg.PublishDelay,
	}
}

// ProcessAllFeeds は設定済みフィードを順に処理します。
// 1つのフィードの失敗がサイクル全体を止めることはありません。
func (s *NewsService) ProcessAllFeeds(ctx context.Context, feeds []*entity.FeedConfig, state *RunnerState) {
	for _, feed := range feeds {
		if err := s.ProcessFeed(ctx, feed, state); err != nil {
			log.Printf("Error processing feed %s: %v", feed.URL, err)
			continue
		}
	}
}

// ProcessFeed は1フィード分のパイプラインを実行します:
// 取得 → ウォーターマークで選別 → 分類 → 変換 → 送信。
func (s *NewsService) ProcessFeed(ctx context.Context, feed *entity.FeedConfig, state *RunnerState) error {
	items, err := s.feedRepo.Fetch(ctx, feed.URL)
	if err != nil {
		return err
	}

	watermark := state.Watermark(feed.URL)

	var eligible []*entity.FeedItem
	for _, item := range items {
		if item.IsNewerThan(watermark) {
			eligible = append(eligible, item)
		}
	}

	sortItemsByPublishedAsc(eligible)

	for _, item := range eligible {
		published, err := s.publishItem(ctx, feed, item)
		if err != nil {
			// 送信失敗: ウォーターマークは進めず次のアイテムへ
			log.Printf("Failed to publish item [%s]: %v", item.Title, err)
			continue
		}
		if !published {
			continue
		}

		state.RecordPost()
		state.AdvanceWatermark(feed.URL, item.Published)
		log.Printf("Posted new item from %s", feed.URL)

		s.pause(ctx)
	}

	return nil
}

// publishItem は(published, error)を返します。分類で弾かれた場合は
// (false, nil)、送信エラーのみ第2戻り値で報告します。
func (s *NewsService) publishItem(ctx context.Context, feed *entity.FeedConfig, item *entity.FeedItem) (bool, error) {
	content := item.Content()

	analysis, err := s.classifier.AnalyzeAppropriateness(ctx, content)
	if err != nil {
		// 未検証コンテンツは公開しない（フェイルクローズ）
		log.Printf("Appropriateness check failed for [%s], skipping: %v", item.Title, err)
		return false, nil
	}
	if !analysis.Publishable() {
		log.Printf("Skipped inappropriate content from %s (rating %s)", feed.URL, analysis.ContentRating)
		for _, reason := range analysis.Reasons {
			log.Printf("Content filter reason: %s", reason)
		}
		return false, nil
	}

	if s.isDuplicate(ctx, content) {
		log.Printf("Skipped duplicate content from %s", feed.URL)
		return false, nil
	}

	text, err := s.composeText(ctx, feed, item, analysis.ContentRating)
	if err != nil {
		log.Printf("No usable transform results for [%s], skipping: %v", item.Title, err)
		return false, nil
	}

	if item.HasImage() {
		imageAnalysis, err := s.transformer.AnalyzeImage(ctx, item.ImageURL)
		if err != nil {
			log.Printf("Image analysis failed for [%s]: %v", item.ImageURL, err)
		}

		if imageAnalysis.Publishable() {
			text = s.optimizeCaption(ctx, imageAnalysis, text)
			if err := s.messageRepo.SendPhoto(ctx, item.ImageURL, text); err != nil {
				return false, err
			}
			return true, nil
		}

		log.Printf("Image rejected for [%s], posting text only", item.Title)
	}

	if err := s.messageRepo.SendMessage(ctx, text); err != nil {
		return false, err
	}
	return true, nil
}

// isDuplicate は重複チェックに失敗した場合falseへ倒します（フェイル
// オープン）。適切性チェックと逆の方針なのは、こちらが二次フィルタ
// だからです。判定結果によらずフィンガープリントは記録します。
func (s *NewsService) isDuplicate(ctx context.Context, content string) bool {
	fp, err := s.classifier.Fingerprint(ctx, content)
	if err != nil {
		log.Printf("Duplicate check failed, continuing without it: %v", err)
		return false
	}

	dup, err := s.fingerprints.IsDuplicate(ctx, fp)
	if err != nil {
		log.Printf("Fingerprint lookup failed, continuing without it: %v", err)
		dup = false
	}

	if err := s.fingerprints.Record(ctx, fp); err != nil {
		log.Printf("Failed to record fingerprint: %v", err)
	}

	return dup
}

func (s *NewsService) composeText(ctx context.Context, feed *entity.FeedConfig, item *entity.FeedItem, rating entity.ContentRating) (string, error) {
	content := item.Title + "\n\n" + s.articleBody(ctx, item)

	sentiment, err := s.transformer.AnalyzeSentiment(ctx, content)
	if err != nil {
		log.Printf("Sentiment analysis failed for [%s]: %v", item.Title, err)
	}

	summary, err := s.transformer.Summarize(ctx, content)
	if err != nil {
		log.Printf("Summary generation failed for [%s]: %v", item.Title, err)
	}

	enhanced, err := s.transformer.Enhance(ctx, content)
	if err != nil {
		log.Printf("Content enhancement failed for [%s]: %v", item.Title, err)
	}

	text, err := entity.ComposeMessage(rating, sentiment, summary, enhanced)
	if err != nil {
		return "", err
	}

	if feed.Language != "" && feed.Language != s.defaultLanguage {
		translation, err := s.transformer.Translate(ctx, text, feed.Language)
		if err != nil {
			log.Printf("Translation to %s failed, posting untranslated: %v", feed.Language, err)
		} else if translation.TranslatedText != "" {
			text = translation.TranslatedText
		}
	}

	return text, nil
}

// articleBody はdescriptionが薄い場合にリンク先から本文を補います
func (s *NewsService) articleBody(ctx context.Context, item *entity.FeedItem) string {
	if s.contentFetcher == nil || len(item.Description) >= minDescriptionLength || item.Link == "" {
		return item.Description
	}

	body, err := s.contentFetcher.FetchContent(ctx, item.Link)
	if err != nil {
		log.Printf("Failed to fetch article body [%s]: %v", item.Link, err)
		return item.Description
	}
	return body
}

func (s *NewsService) optimizeCaption(ctx context.Context, analysis *entity.ImageAnalysis, text string) string {
	caption, err := s.transformer.OptimizeCaption(ctx, analysis, text)
	if err != nil {
		log.Printf("Caption optimization failed, keeping assembled message: %v", err)
		return text
	}
	if caption.Caption == "" {
		return text
	}

	optimized := caption.Caption
	if len(caption.Hashtags) > 0 {
		optimized += "\n\n" + strings.Join(caption.Hashtags, " ")
	}
	return optimized
}

// pause は送信先APIのレート制限を踏まえた送信間隔を空けます
func (s *NewsService) pause(ctx context.Context) {
	if s.publishDelay <= 0 {
		return
	}

	timer := time.NewTimer(s.publishDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func sortItemsByPublishedAsc(items []*entity.FeedItem) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Published.Before(items[j].Published)
	})
}
