package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeriveTitle tests markdown title derivation rules
func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "heading with bold",
			content:  "# Hello **World**",
			expected: "Hello World",
		},
		{
			name:     "leading blank lines are skipped",
			content:  "   \n\nplain text here",
			expected: "plain text here",
		},
		{
			name:     "empty content falls back to placeholder",
			content:  "",
			expected: UntitledTitle,
		},
		{
			name:     "whitespace only falls back to placeholder",
			content:  "  \n\t\n  ",
			expected: UntitledTitle,
		},
		{
			name:     "italic is unwrapped",
			content:  "*emphasised* start",
			expected: "emphasised start",
		},
		{
			name:     "inline code is unwrapped",
			content:  "run `go test` first",
			expected: "run go test first",
		},
		{
			name:     "link is reduced to its text",
			content:  "see [the docs](https://example.com/docs) for details",
			expected: "see the docs for details",
		},
		{
			name:     "multiple heading markers stripped",
			content:  "### Deep Heading",
			expected: "Deep Heading",
		},
		{
			name:     "only formatting marks falls back to placeholder",
			content:  "# ",
			expected: UntitledTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveTitle(tt.content))
		})
	}
}

// TestDeriveTitle_Truncation tests long first lines are truncated
func TestDeriveTitle_Truncation(t *testing.T) {
	long := strings.Repeat("a", 60)
	title := DeriveTitle(long)

	assert.Len(t, []rune(title), 50)
	assert.Equal(t, strings.Repeat("a", 47)+"...", title)

	// Exactly at the limit is untouched.
	exact := strings.Repeat("b", 50)
	assert.Equal(t, exact, DeriveTitle(exact))
}
