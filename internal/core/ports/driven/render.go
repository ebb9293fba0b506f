package driven

// Renderer turns markdown content into a previewable form.
// The persistence core places no contract on the output beyond it being
// derived from the current content string.
type Renderer interface {
	// Render produces the previewable form of the content.
	Render(content string) (string, error)
}

// Exporter writes rendered output to a downloadable artifact named
// from the document title.
type Exporter interface {
	// Export writes the rendered output and returns the artifact path.
	Export(title, rendered string) (string, error)
}
