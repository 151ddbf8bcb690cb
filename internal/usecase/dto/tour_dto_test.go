package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/usecase/dto"
)

func TestTranslatedTextInput_ToDomain(t *testing.T) {
	in := dto.TranslatedTextInput{"es": "Montaña", "en": "Mountain", "zz": "???"}

	out := in.ToDomain()

	assert.Equal(t, "Montaña", out[domain.LanguageES])
	assert.Equal(t, "Mountain", out[domain.LanguageEN])
	// Unknown codes are dropped, not errored.
	assert.Len(t, out, 2)

	assert.Nil(t, dto.TranslatedTextInput(nil).ToDomain())
}

func TestTransportOptionRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare string", `"t-1"`, "t-1"},
		{"object with _id", `{"_id":"t-2","title":{"es":"Cusco a Lima"}}`, "t-2"},
		{"object with id", `{"id":"t-3"}`, "t-3"},
		{"_id wins over id", `{"_id":"t-4","id":"other"}`, "t-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref dto.TransportOptionRef
			err := json.Unmarshal([]byte(tt.in), &ref)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ref.ID)
		})
	}

	t.Run("a full request body", func(t *testing.T) {
		var req dto.SetTransportOptionsRequest
		err := json.Unmarshal([]byte(`{"transportOptions":["t-1",{"_id":"t-2"}]}`), &req)

		assert.NoError(t, err)
		assert.Len(t, req.TransportOptions, 2)
		assert.Equal(t, "t-1", req.TransportOptions[0].ID)
		assert.Equal(t, "t-2", req.TransportOptions[1].ID)
	})
}

func TestNewTourCard(t *testing.T) {
	tour := &domain.Tour{
		ID:    "tour-1",
		Slug:  "camino-inca-clasico",
		Title: domain.TranslatedText{domain.LanguageES: "Camino Inca Clásico", domain.LanguageEN: "Classic Inca Trail"},
		Highlights: []domain.TranslatedText{
			{domain.LanguageES: "Machu Picchu al amanecer"},
		},
		Price:    650,
		IsActive: true,
	}

	card := dto.NewTourCard(tour, domain.LanguageEN)

	assert.Equal(t, "Classic Inca Trail", card.Title)
	// Untranslated entries fall back rather than disappearing.
	assert.Equal(t, []string{"Machu Picchu al amanecer"}, card.Highlights)

	card = dto.NewTourCard(tour, domain.LanguageFR)
	assert.Equal(t, "Camino Inca Clásico", card.Title)
}
