package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"formatted local number", "(11) 98765-4321", "5511987654321"},
		{"already has country code", "5511987654321", "5511987654321"},
		{"plus prefix", "+55 11 98765-4321", "5511987654321"},
		{"digits only", "11987654321", "5511987654321"},
		{"empty", "", ""},
		{"symbols only", "()- ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone, "55"))
		})
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("(11) 98765-4321", "55", "Hello Maria! See you at 10:00")

	assert.Equal(t,
		"https://wa.me/5511987654321?text=Hello%20Maria%21%20See%20you%20at%2010%3A00",
		link)
}
