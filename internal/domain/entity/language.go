package entity

// DefaultLanguage は翻訳をスキップする既定の言語コード
const DefaultLanguage = "en"

var supportedLanguages = map[string]string{
	"en": "English",
	"fa": "Persian",
	"ar": "Arabic",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"hi": "Hindi",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"tr": "Turkish",
	"nl": "Dutch",
}

func IsSupportedLanguage(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}

// LanguageName は言語コードの英語名を返します（翻訳プロンプト用）
func LanguageName(code string) string {
	if name, ok := supportedLanguages[code]; ok {
		return name
	}
	return code
}
