package oaikit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoughTokenCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single char", "a", 1},
		{"whitespace only", "   ", 1},
		{"one word", "hello", 1},
		{"sentence", "The quick brown fox jumps over the lazy dog", 11},
		{"multibyte runes count once", "héllo wörld", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoughTokenCount(tt.content))
		})
	}
}

func TestRoughTokenCountAtLeastOne(t *testing.T) {
	for _, s := range []string{"x", " ", "\n", ".", strings.Repeat("a", 3)} {
		assert.GreaterOrEqual(t, RoughTokenCount(s), 1, "%q", s)
	}
}
