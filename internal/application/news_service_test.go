package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"telegramNewsBot/internal/domain/entity"
)

type mockFeedRepo struct {
	items []*entity.FeedItem
	err   error
}

func (m *mockFeedRepo) Fetch(ctx context.Context, url string) ([]*entity.FeedItem, error) {
	return m.items, m.err
}

type sentMessage struct {
	text     string
	photoURL string
}

type mockMessageRepo struct {
	sent    []sentMessage
	sendErr error
}

func (m *mockMessageRepo) SendMessage(ctx context.Context, text string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMessage{text: text})
	return nil
}

func (m *mockMessageRepo) SendPhoto(ctx context.Context, photoURL, caption string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMessage{text: caption, photoURL: photoURL})
	return nil
}

type mockClassifier struct {
	analysis       *entity.ContentAnalysis
	analysisErr    error
	fingerprint    *entity.ContentFingerprint
	fingerprintErr error
}

func (m *mockClassifier) AnalyzeAppropriateness(ctx context.Context, content string) (*entity.ContentAnalysis, error) {
	return m.analysis, m.analysisErr
}

func (m *mockClassifier) Fingerprint(ctx context.Context, content string) (*entity.ContentFingerprint, error) {
	return m.fingerprint, m.fingerprintErr
}

type mockTransformer struct {
	sentiment    *entity.SentimentAnalysis
	summary      *entity.ContentSummary
	enhanced     *entity.EnhancedContent
	translation  *entity.Translation
	translateErr error
	translatedTo []string
	image        *entity.ImageAnalysis
	imageErr     error
	caption      *entity.ImageCaption
	captionErr   error
}

func (m *mockTransformer) AnalyzeSentiment(ctx context.Context, content string) (*entity.SentimentAnalysis, error) {
	return m.sentiment, nil
}

func (m *mockTransformer) Summarize(ctx context.Context, content string) (*entity.ContentSummary, error) {
	return m.summary, nil
}

func (m *mockTransformer) Enhance(ctx context.Context, content string) (*entity.EnhancedContent, error) {
	return m.enhanced, nil
}

func (m *mockTransformer) Translate(ctx context.Context, text, language string) (*entity.Translation, error) {
	m.translatedTo = append(m.translatedTo, language)
	return m.translation, m.translateErr
}

func (m *mockTransformer) AnalyzeImage(ctx context.Context, imageURL string) (*entity.ImageAnalysis, error) {
	return m.image, m.imageErr
}

func (m *mockTransformer) OptimizeCaption(ctx context.Context, analysis *entity.ImageAnalysis, text string) (*entity.ImageCaption, error) {
	return m.caption, m.captionErr
}

type mockFingerprintRepo struct {
	duplicate bool
	lookupErr error
	recorded  []*entity.ContentFingerprint
}

func (m *mockFingerprintRepo) IsDuplicate(ctx context.Context, fp *entity.ContentFingerprint) (bool, error) {
	return m.duplicate, m.lookupErr
}

func (m *mockFingerprintRepo) Record(ctx context.Context, fp *entity.ContentFingerprint) error {
	m.recorded = append(m.recorded, fp)
	return nil
}

func appropriateAnalysis() *entity.ContentAnalysis {
	return &entity.ContentAnalysis{
		IsAppropriate: true,
		ContentRating: entity.RatingG,
	}
}

func testFingerprint() *entity.ContentFingerprint {
	return &entity.ContentFingerprint{Fingerprint: "abc", Category: "tech"}
}

func testItem(title string, published time.Time) *entity.FeedItem {
	return &entity.FeedItem{
		Title:       title,
		Description: strings.Repeat("long enough description ", 10),
		Link:        "https://example.com/" + title,
		Published:   published,
	}
}

type serviceMocks struct {
	feed         *mockFeedRepo
	message      *mockMessageRepo
	classifier   *mockClassifier
	transformer  *mockTransformer
	fingerprints *mockFingerprintRepo
}

func newTestService(m *serviceMocks) *NewsService {
	return NewNewsService(m.feed, m.message, m.classifier, m.transformer, m.fingerprints, nil, NewsServiceConfig{})
}

func defaultMocks() *serviceMocks {
	return &serviceMocks{
		feed:    &mockFeedRepo{},
		message: &mockMessageRepo{},
		classifier: &mockClassifier{
			analysis:    appropriateAnalysis(),
			fingerprint: testFingerprint(),
		},
		transformer: &mockTransformer{
			summary: &entity.ContentSummary{Summary: "summary", ReadingTime: 3},
		},
		fingerprints: &mockFingerprintRepo{},
	}
}

func TestProcessFeed_PublishesEligibleItemsInAscendingOrder(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	m := defaultMocks()
	m.feed.items = []*entity.FeedItem{
		testItem("second", t2),
		testItem("first", t1),
	}

	service := newTestService(m)
	state := NewRunnerState()
	feed := &entity.FeedConfig{URL: "https://example.com/rss"}

	if err := service.ProcessFeed(context.Background(), feed, state); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(m.message.sent))
	}
	if got := state.Watermark(feed.URL); !got.Equal(t2) {
		t.Errorf("expected watermark %v, got %v", t2, got)
	}
	if state.Stats(1).PostCount != 2 {
		t.Errorf("expected post count 2, got %d", state.Stats(1).PostCount)
	}
}

func TestProcessFeed_SkipsItemsAtOrBelowWatermark(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	m := defaultMocks()
	m.feed.items = []*entity.FeedItem{
		testItem("old", t1.Add(-time.Hour)),
		testItem("at-watermark", t1),
	}

	service := newTestService(m)
	state := NewRunnerState()
	feed := &entity.FeedConfig{URL: "https://example.com/rss"}
	state.AdvanceWatermark(feed.URL, t1)

	if err := service.ProcessFeed(context.Background(), feed, state); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 0 {
		t.Errorf("expected no messages, got %d", len(m.message.sent))
	}
	if got := state.Watermark(feed.URL); !got.Equal(t1) {
		t.Errorf("watermark should be unchanged, got %v", got)
	}
}

func TestProcessFeed_FetchErrorReturned(t *testing.T) {
	m := defaultMocks()
	m.feed.err = &entity.FetchError{URL: "https://example.com/rss", Err: errors.New("timeout")}

	service := newTestService(m)
	err := service.ProcessFeed(context.Background(), &entity.FeedConfig{URL: "https://example.com/rss"}, NewRunnerState())

	var fetchErr *entity.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestPublishItem_AppropriatenessErrorFailsClosed(t *testing.T) {
	m := defaultMocks()
	m.classifier.analysisErr = errors.New("oracle unavailable")
	m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

	service := newTestService(m)
	state := NewRunnerState()
	feed := &entity.FeedConfig{URL: "https://example.com/rss"}

	if err := service.ProcessFeed(context.Background(), feed, state); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 0 {
		t.Error("unverified content must not be published")
	}
	if !state.Watermark(feed.URL).IsZero() {
		t.Error("watermark must not advance for skipped items")
	}
}

func TestPublishItem_RejectsRestrictedRatings(t *testing.T) {
	for _, rating := range []entity.ContentRating{entity.RatingR, entity.RatingAdult} {
		t.Run(string(rating), func(t *testing.T) {
			m := defaultMocks()
			m.classifier.analysis = &entity.ContentAnalysis{IsAppropriate: true, ContentRating: rating}
			m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

			service := newTestService(m)
			if err := service.ProcessFeed(context.Background(), &entity.FeedConfig{URL: "u"}, NewRunnerState()); err != nil {
				t.Fatalf("ProcessFeed failed: %v", err)
			}

			if len(m.message.sent) != 0 {
				t.Errorf("rating %s must not be published", rating)
			}
		})
	}
}

func TestPublishItem_DuplicateSuppressedAndRecorded(t *testing.T) {
	m := defaultMocks()
	m.fingerprints.duplicate = true
	m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

	service := newTestService(m)
	if err := service.ProcessFeed(context.Background(), &entity.FeedConfig{URL: "u"}, NewRunnerState()); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 0 {
		t.Error("duplicate content must not be published")
	}
	if len(m.fingerprints.recorded) != 1 {
		t.Errorf("fingerprint must be recorded even for duplicates, got %d records", len(m.fingerprints.recorded))
	}
}

func TestPublishItem_FingerprintErrorFailsOpen(t *testing.T) {
	m := defaultMocks()
	m.classifier.fingerprintErr = errors.New("oracle unavailable")
	m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

	service := newTestService(m)
	if err := service.ProcessFeed(context.Background(), &entity.FeedConfig{URL: "u"}, NewRunnerState()); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 1 {
		t.Errorf("fingerprint failure must not block publishing, got %d messages", len(m.message.sent))
	}
}

func TestPublishItem_UnsafeImageFallsBackToText(t *testing.T) {
	m := defaultMocks()
	m.transformer.image = &entity.ImageAnalysis{IsAppropriate: false, SafetyRating: entity.ImageUnsafe}
	item := testItem("a", time.Now())
	item.ImageURL = "https://example.com/photo.jpg"
	m.feed.items = []*entity.FeedItem{item}

	service := newTestService(m)
	if err := service.ProcessFeed(context.Background(), &entity.FeedConfig{URL: "u"}, NewRunnerState()); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(m.message.sent))
	}
	if m.message.sent[0].photoURL != "" {
		t.Error("unsafe image must not be attached")
	}
}

func TestPublishItem_SafeImageSentWithOptimizedCaption(t *testing.T) {
	m := defaultMocks()
	m.transformer.image = &entity.ImageAnalysis{IsAppropriate: true, SafetyRating: entity.ImageSafe}
	m.transformer.caption = &entity.ImageCaption{
		Caption:  "An optimized caption",
		Hashtags: []string{"#news", "#tech"},
	}
	item := testItem("a", time.Now())
	item.ImageURL = "https://example.com/photo.jpg"
	m.feed.items = []*entity.FeedItem{item}

	service := newTestService(m)
	if err := service.ProcessFeed(context.Background(), &entity.FeedConfig{URL: "u"}, NewRunnerState()); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(m.message.sent))
	}
	sent := m.message.sent[0]
	if sent.photoURL != item.ImageURL {
		t.Errorf("expected photo URL %s, got %s", item.ImageURL, sent.photoURL)
	}
	want := "An optimized caption\n\n#news #tech"
	if sent.text != want {
		t.Errorf("expected caption %q, got %q", want, sent.text)
	}
}

func TestPublishItem_CaptionFailureKeepsPhotoWithAssembledText(t *testing.T) {
	m := defaultMocks()
	m.transformer.image = &entity.ImageAnalysis{IsAppropriate: true, SafetyRating: entity.ImageModerate}
	m.transformer.captionErr = errors.New("oracle unavailable")
	item := testItem("a", time.Now())
	item.ImageURL = "https://example.com/photo.jpg"
	m.feed.items = []*entity.FeedItem{item}

	service := newTestService(m)
	if err := service.ProcessFeed(context.Background(), &entity.FeedConfig{URL: "u"}, NewRunnerState()); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(m.message.sent))
	}
	sent := m.message.sent[0]
	if sent.photoURL != item.ImageURL {
		t.Error("caption failure must not drop the photo")
	}
	if !strings.Contains(sent.text, "summary") {
		t.Errorf("expected assembled message as caption, got %q", sent.text)
	}
}

func TestPublishItem_TranslatesForNonDefaultLanguage(t *testing.T) {
	m := defaultMocks()
	m.transformer.translation = &entity.Translation{TranslatedText: "translated body"}
	m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

	service := newTestService(m)
	feed := &entity.FeedConfig{URL: "u", Language: "ja"}
	if err := service.ProcessFeed(context.Background(), feed, NewRunnerState()); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.transformer.translatedTo) != 1 || m.transformer.translatedTo[0] != "ja" {
		t.Errorf("expected translation to ja, got %v", m.transformer.translatedTo)
	}
	if len(m.message.sent) != 1 || m.message.sent[0].text != "translated body" {
		t.Errorf("expected translated message, got %v", m.message.sent)
	}
}

func TestPublishItem_NoTranslationForDefaultLanguage(t *testing.T) {
	m := defaultMocks()
	m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

	service := newTestService(m)
	feed := &entity.FeedConfig{URL: "u", Language: "en"}
	if err := service.ProcessFeed(context.Background(), feed, NewRunnerState()); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.transformer.translatedTo) != 0 {
		t.Errorf("default-language feeds must not be translated, got %v", m.transformer.translatedTo)
	}
}

func TestPublishItem_TranslationFailurePostsUntranslated(t *testing.T) {
	m := defaultMocks()
	m.transformer.translateErr = errors.New("oracle unavailable")
	m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

	service := newTestService(m)
	feed := &entity.FeedConfig{URL: "u", Language: "ja"}
	if err := service.ProcessFeed(context.Background(), feed, NewRunnerState()); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 1 {
		t.Fatalf("expected untranslated message, got %d messages", len(m.message.sent))
	}
	if !strings.Contains(m.message.sent[0].text, "summary") {
		t.Errorf("expected assembled message, got %q", m.message.sent[0].text)
	}
}

func TestPublishItem_AllTransformsFailedSkipsItem(t *testing.T) {
	m := defaultMocks()
	m.transformer.summary = nil
	m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

	service := newTestService(m)
	state := NewRunnerState()
	feed := &entity.FeedConfig{URL: "u"}
	if err := service.ProcessFeed(context.Background(), feed, state); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if len(m.message.sent) != 0 {
		t.Error("item with no transform results must be skipped")
	}
	if !state.Watermark(feed.URL).IsZero() {
		t.Error("watermark must not advance for skipped items")
	}
}

func TestPublishItem_SendErrorDoesNotAdvanceWatermark(t *testing.T) {
	m := defaultMocks()
	m.message.sendErr = &entity.PublishError{Op: "sendMessage", StatusCode: 400, Err: errors.New("bad request")}
	m.feed.items = []*entity.FeedItem{testItem("a", time.Now())}

	service := newTestService(m)
	state := NewRunnerState()
	feed := &entity.FeedConfig{URL: "u"}
	if err := service.ProcessFeed(context.Background(), feed, state); err != nil {
		t.Fatalf("ProcessFeed failed: %v", err)
	}

	if !state.Watermark(feed.URL).IsZero() {
		t.Error("watermark must not advance when sending fails")
	}
	if state.Stats(1).PostCount != 0 {
		t.Error("failed sends must not count as posts")
	}
}

type mockContentFetcher struct {
	content string
	err     error
	fetched []string
}

func (m *mockContentFetcher) FetchContent(ctx context.Context, url string) (string, error) {
	m.fetched = append(m.fetched, url)
	return m.content, m.err
}

func TestArticleBody_FetchesWhenDescriptionShort(t *testing.T) {
	fetcher := &mockContentFetcher{content: "full article body"}
	m := defaultMocks()
	service := NewNewsService(m.feed, m.message, m.classifier, m.transformer, m.fingerprints, fetcher, NewsServiceConfig{})

	item := &entity.FeedItem{Title: "a", Description: "short", Link: "https://example.com/a"}
	body := service.articleBody(context.Background(), item)

	if body != "full article body" {
		t.Errorf("expected fetched body, got %q", body)
	}
	if len(fetcher.fetched) != 1 {
		t.Errorf("expected 1 fetch, got %d", len(fetcher.fetched))
	}
}

func TestArticleBody_KeepsDescriptionOnFetchError(t *testing.T) {
	fetcher := &mockContentFetcher{err: errors.New("unreachable")}
	m := defaultMocks()
	service := NewNewsService(m.feed, m.message, m.classifier, m.transformer, m.fingerprints, fetcher, NewsServiceConfig{})

	item := &entity.FeedItem{Title: "a", Description: "short", Link: "https://example.com/a"}
	if body := service.articleBody(context.Background(), item); body != "short" {
		t.Errorf("expected original description, got %q", body)
	}
}
