package domain

import "strings"

// TranslatedText holds one field in several languages. A missing key means
// "not yet translated", not an error.
type TranslatedText map[Language]string

// Resolve returns the value for the requested language, falling back to
// Spanish, then English, then the empty string.
func (t TranslatedText) Resolve(lang Language) string {
	if t == nil {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[LanguageES]; ok && v != "" {
		return v
	}
	if v, ok := t[LanguageEN]; ok && v != "" {
		return v
	}
	return ""
}

// HasDefault reports whether the source-language value is populated.
func (t TranslatedText) HasDefault() bool {
	return t != nil && t[DefaultLanguage] != ""
}

// Contains reports whether any translation contains the query,
// case-insensitively. Used by the listing filter pipeline.
func (t TranslatedText) Contains(query string) bool {
	if t == nil || query == "" {
		return false
	}
	query = strings.ToLower(query)
	for _, v := range t {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

// ResolveAll maps a slice of translated values into plain strings for one
// language, preserving order.
func ResolveAll(items []TranslatedText, lang Language) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Resolve(lang))
	}
	return out
}
