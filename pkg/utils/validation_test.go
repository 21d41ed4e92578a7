package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.co", true},
		{"user+tag@example.com", true},
		{"", false},
		{"no-at-sign", false},
		{"missing-domain@", false},
		{"@missing-local.com", false},
		{"no-dot@domain", false},
		{"spaces in@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}
