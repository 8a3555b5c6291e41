package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "R$ 0,00"},
		{"cents only", 99, "R$ 0,99"},
		{"round value", 12500, "R$ 125,00"},
		{"thousands grouping", 123456, "R$ 1.234,56"},
		{"millions grouping", 123456789, "R$ 1.234.567,89"},
		{"negative", -1050, "-R$ 10,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.cents))
		})
	}
}
