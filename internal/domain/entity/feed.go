package entity

import "time"

// FeedConfig は配信対象のRSSフィード設定（URLがキー）
type FeedConfig struct {
	URL      string
	Language string
}

func NewFeedConfig(url, language string) *FeedConfig {
	return &FeedConfig{
		URL:      url,
		Language: language,
	}
}

type FeedItem struct {
	Title       string
	Description string
	Link        string
	Published   time.Time
	ImageURL    string
}

func NewFeedItem(title, description, link string, published time.Time, imageURL string) *FeedItem {
	return &FeedItem{
		Title:       title,
		Description: description,
		Link:        link,
		Published:   published,
		ImageURL:    imageURL,
	}
}

func (f *FeedItem) IsNewerThan(t time.Time) bool {
	return f.Published.After(t)
}

// Content は分類・変換の入力となるタイトルと本文の連結
func (f *FeedItem) Content() string {
	return f.Title + " " + f.Description
}

func (f *FeedItem) HasImage() bool {
	return f.ImageURL != ""
}
