package langswap

import "regexp"

// tagPattern matches one language tag: [[ followed by exactly two
// lowercase ASCII letters and ]].
var tagPattern = regexp.MustCompile(`\[\[([a-z]{2})\]\]`)

// HasMarkup reports whether text contains at least one language tag.
func HasMarkup(text string) bool {
	return tagPattern.MatchString(text)
}

// ParseMarkup extracts a Dictionary from a single text blob.
//
// A tag is [[xx]] with xx exactly two lowercase ASCII letters; its
// content runs verbatim up to (but not including) the next [[ or the
// end of the string. Anything before the first valid tag is ignored,
// and a fragment whose opening [[ is not followed by a valid tag
// (including a bare trailing [[) is dropped. If the same code appears
// more than once, the last occurrence wins.
//
// Text with no tags yields an empty Dictionary.
func ParseMarkup(text string) Dictionary {
	dict := make(Dictionary)

	for _, m := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		code := text[m[2]:m[3]]
		content := text[m[1]:]
		if cut := indexTagOpen(content); cut >= 0 {
			content = content[:cut]
		}
		dict[code] = content
	}

	return dict
}

// indexTagOpen returns the position of the first [[ in s, or -1.
func indexTagOpen(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '[' && s[i+1] == '[' {
			return i
		}
	}
	return -1
}

// tagCodes returns every valid tag code in text, in order of
// appearance, duplicates included.
func tagCodes(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		codes = append(codes, m[1])
	}
	return codes
}
