package utils

import (
	"strings"
	"unicode"
)

var slugReplacements = map[rune]string{
	'á': "a", 'é': "e", 'í': "i", 'ó': "o", 'ú': "u",
	'à': "a", 'è': "e", 'ì': "i", 'ò': "o", 'ù': "u",
	'ä': "a", 'ë': "e", 'ï': "i", 'ö': "o", 'ü': "u",
	'ñ': "n", 'ç': "c", 'ß': "ss",
}

// Slugify builds a URL-safe slug from a title. Accented characters common in
// the supported languages are transliterated, everything else non-alphanumeric
// collapses into single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen

	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if repl, ok := slugReplacements[r]; ok {
				b.WriteString(repl)
				lastHyphen = false
				continue
			}
			if unicode.IsSpace(r) || r == '-' || r == '_' || r == '/' {
				if !lastHyphen {
					b.WriteByte('-')
					lastHyphen = true
				}
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
