package domain

import "strings"

// Language is an ISO 639-1 code for user-facing content.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
	LanguageDE Language = "de"
	LanguageIT Language = "it"
)

// DefaultLanguage is the content source language; required fields are always
// expected to carry it.
const DefaultLanguage = LanguageES

// ContentLanguages lists every language entity fields may be translated into.
func ContentLanguages() []Language {
	return []Language{LanguageES, LanguageEN, LanguageFR, LanguageDE, LanguageIT}
}

// UILanguages lists the languages offered as a UI preference. This is the
// narrower set persisted per user.
func UILanguages() []Language {
	return []Language{LanguageES, LanguageEN, LanguageFR, LanguageDE}
}

// IsValidLanguage checks membership in the content language catalog.
func IsValidLanguage(code string) bool {
	for _, l := range ContentLanguages() {
		if string(l) == code {
			return true
		}
	}
	return false
}

// IsValidUILanguage checks membership in the UI preference catalog.
func IsValidUILanguage(code string) bool {
	for _, l := range UILanguages() {
		if string(l) == code {
			return true
		}
	}
	return false
}

// ParseLanguage normalizes a raw code to a UI language, falling back to the
// default for anything unknown.
func ParseLanguage(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	if IsValidUILanguage(code) {
		return Language(code)
	}
	return DefaultLanguage
}

// ParseAcceptLanguage resolves an Accept-Language header value to a UI
// language by primary-subtag prefix, defaulting to Spanish.
func ParseAcceptLanguage(header string) Language {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		prefix := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		switch prefix {
		case "en":
			return LanguageEN
		case "fr":
			return LanguageFR
		case "de":
			return LanguageDE
		case "es":
			return LanguageES
		}
	}
	return DefaultLanguage
}
