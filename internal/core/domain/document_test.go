package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewWelcomeDocument tests the bootstrap document shape
func TestNewWelcomeDocument(t *testing.T) {
	now := time.Now().UTC()
	doc := NewWelcomeDocument(now)

	assert.Equal(t, WelcomeDocumentID, doc.ID)
	assert.Equal(t, "Welcome", doc.Title)
	assert.Contains(t, doc.Content, "# Welcome to Markpad")
	assert.Equal(t, now, doc.CreatedAt)
	assert.Equal(t, now, doc.UpdatedAt)
	assert.True(t, doc.IsWelcome())
}

// TestNewDocument tests fresh document creation
func TestNewDocument(t *testing.T) {
	now := time.Now().UTC()
	doc := NewDocument("doc-123", now)

	assert.Equal(t, "doc-123", doc.ID)
	assert.Equal(t, UntitledTitle, doc.Title)
	assert.Equal(t, StarterContent, doc.Content)
	assert.False(t, doc.IsWelcome())
	require.NoError(t, doc.Validate())
}

// TestDocument_Validate tests the shape contract
func TestDocument_Validate(t *testing.T) {
	doc := Document{}
	assert.ErrorIs(t, doc.Validate(), ErrInvalidInput)

	doc.ID = "doc-1"
	assert.NoError(t, doc.Validate())
}
