package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/i18n"
)

func TestNewLocalizer(t *testing.T) {
	t.Run("loads every supported dictionary", func(t *testing.T) {
		l, err := i18n.NewLocalizer("es", []string{"es", "en", "fr", "de"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"es", "en", "fr", "de"}, l.Languages())
		assert.Equal(t, domain.LanguageES, l.DefaultLanguage())
	})

	t.Run("rejects unknown language codes", func(t *testing.T) {
		l, err := i18n.NewLocalizer("es", []string{"es", "pt"})

		assert.Nil(t, l)
		assert.Error(t, err)
	})

	t.Run("requires a dictionary for the default language", func(t *testing.T) {
		l, err := i18n.NewLocalizer("fr", []string{"es", "en"})

		assert.Nil(t, l)
		assert.Error(t, err)
	})
}

func TestLocalizer_T(t *testing.T) {
	l, err := i18n.NewLocalizer("es", []string{"es", "en", "fr", "de"})
	assert.NoError(t, err)

	t.Run("resolves the requested language", func(t *testing.T) {
		assert.Equal(t, "Carrito", l.T(domain.LanguageES, "nav.cart"))
		assert.NotEqual(t, l.T(domain.LanguageES, "nav.cart"), l.T(domain.LanguageEN, "nav.cart"))
	})

	t.Run("unknown language falls back to the default", func(t *testing.T) {
		assert.Equal(t, "Carrito", l.T(domain.LanguageIT, "nav.cart"))
	})

	t.Run("unknown key echoes the key", func(t *testing.T) {
		assert.Equal(t, "nav.missing", l.T(domain.LanguageES, "nav.missing"))
	})
}

func TestLocalizer_Dictionary(t *testing.T) {
	l, err := i18n.NewLocalizer("es", []string{"es", "en"})
	assert.NoError(t, err)

	es := l.Dictionary(domain.LanguageES)
	en := l.Dictionary(domain.LanguageEN)

	assert.NotEmpty(t, es)
	// Both dictionaries carry the same key set.
	assert.Len(t, en, len(es))
	for key := range es {
		assert.Contains(t, en, key)
	}

	// Unloaded languages fall back to the default table.
	assert.Equal(t, es, l.Dictionary(domain.LanguageFR))
}
