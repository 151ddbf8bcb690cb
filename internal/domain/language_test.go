package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkatravel-api/internal/domain"
)

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, domain.LanguageEN, domain.ParseLanguage("en"))
	assert.Equal(t, domain.LanguageDE, domain.ParseLanguage(" DE "))
	assert.Equal(t, domain.DefaultLanguage, domain.ParseLanguage("pt"))
	assert.Equal(t, domain.DefaultLanguage, domain.ParseLanguage(""))
	// Italian is a content language but not a UI preference.
	assert.Equal(t, domain.DefaultLanguage, domain.ParseLanguage("it"))
}

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   domain.Language
	}{
		{"en-US,en;q=0.9,es;q=0.8", domain.LanguageEN},
		{"fr-FR,fr;q=0.9", domain.LanguageFR},
		{"de", domain.LanguageDE},
		{"pt-BR,pt;q=0.9", domain.LanguageES},
		{"", domain.LanguageES},
		{"zz, en;q=0.5", domain.LanguageEN},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParseAcceptLanguage(tt.header), "header %q", tt.header)
	}
}

func TestIsValidLanguage(t *testing.T) {
	assert.True(t, domain.IsValidLanguage("it"))
	assert.False(t, domain.IsValidUILanguage("it"))
	assert.True(t, domain.IsValidUILanguage("fr"))
	assert.False(t, domain.IsValidLanguage("jp"))
}
