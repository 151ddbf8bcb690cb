package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkatravel-api/internal/pkg/utils"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Camino Inca Clásico", "camino-inca-clasico"},
		{"Cusco a Lima", "cusco-a-lima"},
		{"  Valle   Sagrado  ", "valle-sagrado"},
		{"Cañón del Colca", "canon-del-colca"},
		{"Tour 4D/3N", "tour-4d-3n"},
		{"Füssen über München", "fussen-uber-munchen"},
		{"¡¿!?", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.Slugify(tt.in), "input %q", tt.in)
	}
}
