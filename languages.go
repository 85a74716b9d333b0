package langswap

import "strings"

// LanguageNames maps two-letter codes to human-readable names for
// diagnostics and CLI output.
var LanguageNames = map[string]string{
	"ar": "Arabic",
	"ca": "Catalan",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"eu": "Basque",
	"fi": "Finnish",
	"fr": "French",
	"gl": "Galician",
	"he": "Hebrew",
	"hi": "Hindi",
	"hu": "Hungarian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sv": "Swedish",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// LanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func LanguageName(code string) string {
	if name, ok := LanguageNames[NormalizeLanguage(code)]; ok {
		return name
	}
	return code
}

// NormalizeLanguage reduces a locale string to its base language code:
// lowercased, with any encoding suffix and region stripped
// (e.g. "de-DE" → "de", "ca_ES.UTF-8" → "ca").
func NormalizeLanguage(code string) string {
	if idx := strings.Index(code, "."); idx != -1 {
		code = code[:idx]
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "_-"); idx != -1 {
		code = code[:idx]
	}
	return code
}

// IsValidLanguage reports whether code is exactly two lowercase ASCII
// letters.
func IsValidLanguage(code string) bool {
	if len(code) != 2 {
		return false
	}
	return code[0] >= 'a' && code[0] <= 'z' && code[1] >= 'a' && code[1] <= 'z'
}
