package entity

import "time"

// ContentRating はオラクルが返すレーティング（G が最も安全）
type ContentRating string

const (
	RatingG       ContentRating = "G"
	RatingPG      ContentRating = "PG"
	RatingPG13    ContentRating = "PG-13"
	RatingR       ContentRating = "R"
	RatingAdult   ContentRating = "18+"
	RatingUnknown ContentRating = ""
)

// IsPublishable はRより厳密に安全なレーティングかどうかを返します
// （Rと18+は公開不可）
func (r ContentRating) IsPublishable() bool {
	switch r {
	case RatingG, RatingPG, RatingPG13:
		return true
	default:
		return false
	}
}

// ContentAnalysis は適切性チェックの結果
type ContentAnalysis struct {
	IsAppropriate   bool          `json:"isAppropriate"`
	ConfidenceScore float64       `json:"confidenceScore"`
	Flags           []string      `json:"flags"`
	ContentRating   ContentRating `json:"contentRating"`
	Reasons         []string      `json:"reasons"`
}

// Publishable は適切性とレーティングの両方の条件を満たすかどうか
func (a *ContentAnalysis) Publishable() bool {
	return a != nil && a.IsAppropriate && a.ContentRating.IsPublishable()
}

// ContentFingerprint は重複検出用の意味的フィンガープリント
type ContentFingerprint struct {
	Fingerprint string `json:"contentFingerprint"`
	Category    string `json:"topicCategory"`
}

// FingerprintRecord は直近処理済みコンテンツの記録（最新が先頭、最大100件）
type FingerprintRecord struct {
	Fingerprint string
	Category    string
	Timestamp   time.Time
}

// MaxFingerprintRecords はフィンガープリントストアの上限件数
const MaxFingerprintRecords = 100

// Matches はフィンガープリントまたはカテゴリの一致で重複とみなします
func (r *FingerprintRecord) Matches(fp *ContentFingerprint) bool {
	return r.Fingerprint == fp.Fingerprint || r.Category == fp.Category
}

type SentimentAnalysis struct {
	Sentiment      string   `json:"sentiment"`
	Score          float64  `json:"score"`
	MainThemes     []string `json:"mainThemes"`
	EmotionalTone  string   `json:"emotionalTone"`
	ContentQuality float64  `json:"contentQuality"`
}

type ContentSummary struct {
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"keyPoints"`
	ReadingTime     int      `json:"readingTime"`
	ComplexityLevel string   `json:"complexityLevel"`
}

type EnhancedContent struct {
	EnhancedContent  string   `json:"enhancedContent"`
	AddedContext     []string `json:"addedContext"`
	Suggestions      []string `json:"suggestions"`
	ReadabilityScore float64  `json:"readabilityScore"`
}

type Translation struct {
	TranslatedText    string   `json:"translatedText"`
	Confidence        float64  `json:"confidence"`
	CulturalNotes     []string `json:"culturalNotes"`
	PreservedElements []string `json:"preservedElements"`
}

// ImageSafetyRating は画像の安全性評価
type ImageSafetyRating string

const (
	ImageSafe     ImageSafetyRating = "safe"
	ImageModerate ImageSafetyRating = "moderate"
	ImageUnsafe   ImageSafetyRating = "unsafe"
)

type ImageAnalysis struct {
	IsAppropriate      bool              `json:"isAppropriate"`
	ContentDescription string            `json:"contentDescription"`
	DetectedObjects    []string          `json:"detectedObjects"`
	SuggestedTags      []string          `json:"suggestedTags"`
	VisualQualityScore float64           `json:"visualQualityScore"`
	SafetyRating       ImageSafetyRating `json:"safetyRating"`
}

// Publishable は画像を添付して良いかどうか（unsafeのみ除外）
func (a *ImageAnalysis) Publishable() bool {
	return a != nil && a.IsAppropriate && a.SafetyRating != ImageUnsafe
}

type ImageCaption struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	AltText  string   `json:"altText"`
}

// ContentTrends は定期アナリティクスの結果
type ContentTrends struct {
	TopicDistribution map[string]float64 `json:"topicDistribution"`
	PeakHours         []int              `json:"peakHours"`
	BestTopics        []string           `json:"bestPerformingTopics"`
	Recommendations   []string           `json:"recommendations"`
}

type PostingSchedule struct {
	OptimalHours         []int    `json:"optimalHours"`
	RecommendedFrequency int      `json:"recommendedFrequency"`
	Considerations       []string `json:"specialConsiderations"`
}

// RunStats は稼働中のカウンタのスナップショット
type RunStats struct {
	PostCount   int
	ActiveFeeds int
	Uptime      time.Duration
}
