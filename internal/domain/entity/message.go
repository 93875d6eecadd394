package entity

import (
	"fmt"
	"strings"
)

const contentWarning = "⚠️ Content Warning: This post may contain mature themes\n\n"

// ComposeMessage は変換結果を1通の投稿テキストに組み立てます。
// 欠けたパーツは空のプレースホルダで代替しますが、sentiment・summary・
// enhancement の全てが欠けている場合はエラーを返します（投稿スキップ）。
func ComposeMessage(rating ContentRating, sentiment *SentimentAnalysis, summary *ContentSummary, enhanced *EnhancedContent) (string, error) {
	if sentiment == nil && summary == nil && enhanced == nil {
		return "", ErrNothingToPublish
	}

	if sentiment == nil {
		sentiment = &SentimentAnalysis{}
	}
	if summary == nil {
		summary = &ContentSummary{}
	}
	if enhanced == nil {
		enhanced = &EnhancedContent{}
	}

	var b strings.Builder

	if rating == RatingPG13 {
		b.WriteString(contentWarning)
	}

	b.WriteString(fmt.Sprintf("📰 <b>%s</b>\n\n", summary.Summary))
	b.WriteString(fmt.Sprintf("%s\n\n", enhanced.EnhancedContent))

	if len(sentiment.MainThemes) > 0 {
		b.WriteString(fmt.Sprintf("🔑 Key Themes: %s\n", strings.Join(sentiment.MainThemes, ", ")))
	}

	b.WriteString(fmt.Sprintf("\n📊 Content Quality: %.0f%%\n", sentiment.ContentQuality*100))
	b.WriteString(fmt.Sprintf("⏱ Reading Time: %d minutes\n\n", summary.ReadingTime))

	b.WriteString(strings.Join(HashtagsFromThemes(sentiment.MainThemes), " "))

	return b.String(), nil
}

// HashtagsFromThemes はテーマから空白を除去しハッシュタグ化します
func HashtagsFromThemes(themes []string) []string {
	tags := make([]string, 0, len(themes))
	for _, theme := range themes {
		compact := strings.Join(strings.Fields(theme), "")
		if compact == "" {
			continue
		}
		tags = append(tags, "#"+compact)
	}
	return tags
}
