package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/inkatravel-api/internal/domain"
)

//go:embed locales/*.json
var localeFS embed.FS

// Localizer serves the static UI-string dictionaries. Dictionaries are
// loaded once at startup; a missing locale file is a hard error so broken
// deployments fail fast instead of shipping untranslated pages.
type Localizer struct {
	dictionaries map[domain.Language]map[string]string
	defaultLang  domain.Language
}

func NewLocalizer(defaultLang string, supported []string) (*Localizer, error) {
	l := &Localizer{
		dictionaries: make(map[domain.Language]map[string]string, len(supported)),
		defaultLang:  domain.ParseLanguage(defaultLang),
	}

	for _, code := range supported {
		if !domain.IsValidUILanguage(code) {
			return nil, fmt.Errorf("unsupported UI language in config: %q", code)
		}
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", code))
		if err != nil {
			return nil, fmt.Errorf("failed to load locale %s: %w", code, err)
		}

		var dict map[string]string
		if err := json.Unmarshal(data, &dict); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", code, err)
		}

		l.dictionaries[domain.Language(code)] = dict
	}

	if _, ok := l.dictionaries[l.defaultLang]; !ok {
		return nil, fmt.Errorf("default language %q has no dictionary", l.defaultLang)
	}

	return l, nil
}

// T resolves one UI string: requested language, then the default language,
// then the key itself.
func (l *Localizer) T(lang domain.Language, key string) string {
	if dict, ok := l.dictionaries[lang]; ok {
		if v, ok := dict[key]; ok {
			return v
		}
	}
	if v, ok := l.dictionaries[l.defaultLang][key]; ok {
		return v
	}
	return key
}

// Dictionary returns the full translation table for one language, falling
// back to the default language's table for unknown codes.
func (l *Localizer) Dictionary(lang domain.Language) map[string]string {
	if dict, ok := l.dictionaries[lang]; ok {
		return dict
	}
	return l.dictionaries[l.defaultLang]
}

// Languages lists the loaded language codes.
func (l *Localizer) Languages() []string {
	out := make([]string, 0, len(l.dictionaries))
	for _, lang := range domain.UILanguages() {
		if _, ok := l.dictionaries[lang]; ok {
			out = append(out, string(lang))
		}
	}
	return out
}

// DefaultLanguage returns the configured fallback language.
func (l *Localizer) DefaultLanguage() domain.Language {
	return l.defaultLang
}
