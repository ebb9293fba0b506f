package domain

import (
	"regexp"
	"strings"
)

// UntitledTitle is the placeholder title for documents whose content
// yields no usable first line.
const UntitledTitle = "Untitled Document"

// maxTitleLen bounds derived titles; longer titles are truncated to
// truncatedTitleLen runes plus an ellipsis marker.
const (
	maxTitleLen       = 50
	truncatedTitleLen = 47
)

var (
	headingRe = regexp.MustCompile(`^#+\s*`)
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.*?)\*`)
	codeRe    = regexp.MustCompile("`(.*?)`")
	linkRe    = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
)

// DeriveTitle computes a document title from its markdown content.
// The first non-blank line is stripped of heading markers, unwrapped of
// bold/italic/inline-code delimiters and link syntax, then trimmed and
// length-limited. An empty outcome falls back to UntitledTitle.
func DeriveTitle(content string) string {
	if strings.TrimSpace(content) == "" {
		return UntitledTitle
	}

	var firstLine string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			firstLine = line
			break
		}
	}
	if firstLine == "" {
		return UntitledTitle
	}

	title := headingRe.ReplaceAllString(firstLine, "")
	title = boldRe.ReplaceAllString(title, "$1")
	title = italicRe.ReplaceAllString(title, "$1")
	title = codeRe.ReplaceAllString(title, "$1")
	title = linkRe.ReplaceAllString(title, "$1")
	title = strings.TrimSpace(title)

	if runes := []rune(title); len(runes) > maxTitleLen {
		title = string(runes[:truncatedTitleLen]) + "..."
	}

	if title == "" {
		return UntitledTitle
	}
	return title
}
