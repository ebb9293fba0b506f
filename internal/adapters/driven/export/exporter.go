// Package export writes documents to standalone files named from their
// titles, the download-style output of the editor.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/markpad-labs/markpad-cli/internal/core/domain"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driven"
)

// Ensure implementations satisfy the interfaces.
var (
	_ driven.Renderer = (*MarkdownRenderer)(nil)
	_ driven.Exporter = (*FileExporter)(nil)
)

// MarkdownRenderer passes markdown through unchanged. The export
// artifact carries the raw document content.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a passthrough renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the content unchanged.
func (r *MarkdownRenderer) Render(content string) (string, error) {
	return content, nil
}

// FileExporter writes rendered output to <title>.md in the export
// directory, sanitizing the title for use as a filename.
type FileExporter struct {
	exportDir string
}

// NewFileExporter creates an exporter targeting the given directory.
// If exportDir is empty, the current working directory is used.
func NewFileExporter(exportDir string) *FileExporter {
	return &FileExporter{exportDir: exportDir}
}

// Export writes the rendered output and returns the artifact path.
func (e *FileExporter) Export(title, rendered string) (string, error) {
	dir := e.exportDir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving export directory: %w", err)
		}
	} else if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("ensuring export directory: %w", err)
	}

	path := filepath.Join(dir, sanitizeFilename(title)+".md")
	if err := os.WriteFile(path, []byte(rendered), 0600); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}

	return path, nil
}

// sanitizeFilename replaces characters that are unsafe in filenames.
func sanitizeFilename(title string) string {
	if strings.TrimSpace(title) == "" {
		title = domain.UntitledTitle
	}

	var b strings.Builder
	for _, r := range title {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
