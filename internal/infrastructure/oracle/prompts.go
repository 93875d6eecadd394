package oracle

// 各呼び出しのプロンプト。応答は必ず1つのJSONオブジェクトであることを
// 期待し、復号はclient.goの境界で型付きで行います。

const appropriatenessPrompt = `Analyze this content for appropriateness and safety.
Check for adult content, explicit material, inappropriate themes, or sensitive topics.
Return a detailed analysis with confidence scores.

interface Response {
  isAppropriate: boolean;
  confidenceScore: number;
  flags: string[];
  contentRating: 'G' | 'PG' | 'PG-13' | 'R' | '18+';
  reasons: string[];
}

Example:
{
  "isAppropriate": true,
  "confidenceScore": 0.95,
  "flags": [],
  "contentRating": "G",
  "reasons": ["Family-friendly content", "No inappropriate themes"]
}`

const fingerprintPrompt = `Analyze this content and generate a unique content fingerprint that captures the key meaning, regardless of exact wording or language.
Return a JSON object with the fingerprint and topic category.

interface Response {
  contentFingerprint: string;
  topicCategory: string;
}

Example:
{
  "contentFingerprint": "ukraine-russia-peace-talks-fail",
  "topicCategory": "international-conflict"
}`

const sentimentPrompt = `Analyze the sentiment and key themes of this content.
Return a JSON object with the analysis results.

interface Response {
  sentiment: 'positive' | 'negative' | 'neutral';
  score: number;
  mainThemes: string[];
  emotionalTone: string;
  contentQuality: number;
}

Example:
{
  "sentiment": "positive",
  "score": 0.8,
  "mainThemes": ["technology", "innovation", "progress"],
  "emotionalTone": "optimistic",
  "contentQuality": 0.9
}`

const summaryPrompt = `Generate a concise summary of this content.
Return a JSON object with the summary and key points.

interface Response {
  summary: string;
  keyPoints: string[];
  readingTime: number;
  complexityLevel: 'basic' | 'intermediate' | 'advanced';
}

Example:
{
  "summary": "A breakthrough in quantum computing...",
  "keyPoints": ["New quantum chip developed", "Faster processing speeds"],
  "readingTime": 3,
  "complexityLevel": "intermediate"
}`

const enhancePrompt = `Enhance this content to make it more engaging and informative.
Return a JSON object with the enhanced content.

interface Response {
  enhancedContent: string;
  addedContext: string[];
  suggestions: string[];
  readabilityScore: number;
}

Example:
{
  "enhancedContent": "In a groundbreaking development...",
  "addedContext": ["Historical background", "Future implications"],
  "suggestions": ["Add expert quotes", "Include statistics"],
  "readabilityScore": 0.85
}`

const translatePromptFormat = `Translate the following text to %s.
Consider cultural context and maintain appropriate formatting.
For Persian and Arabic, ensure proper RTL formatting and cultural sensitivity.
Preserve links and formatting markup unchanged.

interface Response {
  translatedText: string;
  confidence: number;
  culturalNotes: string[];
  preservedElements: string[];
}`

const imageAnalysisPrompt = `Analyze this image URL and provide insights about its content and appropriateness.

interface Response {
  isAppropriate: boolean;
  contentDescription: string;
  detectedObjects: string[];
  suggestedTags: string[];
  visualQualityScore: number;
  safetyRating: 'safe' | 'moderate' | 'unsafe';
}

Example:
{
  "isAppropriate": true,
  "contentDescription": "A scenic mountain landscape at sunset",
  "detectedObjects": ["mountains", "sun", "clouds", "trees"],
  "suggestedTags": ["nature", "landscape", "sunset", "mountains"],
  "visualQualityScore": 0.92,
  "safetyRating": "safe"
}`

const captionPrompt = `Generate an optimized image caption combining image analysis and content.

interface Response {
  caption: string;
  hashtags: string[];
  altText: string;
}

Example:
{
  "caption": "Stunning mountain vista captures nature's majesty at golden hour",
  "hashtags": ["#NaturePhotography", "#Sunset", "#MountainViews"],
  "altText": "Mountains bathed in warm sunset light with dramatic cloud formations"
}`

const trendsPrompt = `Analyze content trends and patterns from recent posts.
Return insights about topic distribution, engagement patterns, and recommendations.

interface Response {
  topicDistribution: { [key: string]: number };
  peakHours: number[];
  bestPerformingTopics: string[];
  recommendations: string[];
}`

const schedulePrompt = `Analyze optimal posting times based on engagement data.
Consider time zones, user activity patterns, and content type.

interface Response {
  optimalHours: number[];
  recommendedFrequency: number;
  specialConsiderations: string[];
}`
