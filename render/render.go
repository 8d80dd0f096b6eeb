// Package render turns generated markdown into HTML that is safe to
// display. Generator output is untrusted, so every render passes through
// the sanitizer; there is no way to skip it.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	// Raw HTML is let through here and stripped by the policy below.
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)

	policy = bluemonday.UGCPolicy()

	listMarkerPattern = regexp.MustCompile(`\n([0-9]+\.|[-•])`)
	headingPattern    = regexp.MustCompile(`\n(#{1,3} )`)
)

// Preprocess normalizes generator output that may skimp on the spacing
// markdown needs: line breaks are normalized, every line becomes its own
// paragraph, and list markers and headings get a blank line in front of
// them. Applying it to already-normalized text changes nothing.
func Preprocess(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	text = strings.Join(lines, "\n\n")

	text = listMarkerPattern.ReplaceAllString(text, "\n\n$1")
	text = headingPattern.ReplaceAllString(text, "\n\n$1")

	return text
}

// Render converts markdown text into sanitized HTML. It never fails:
// input that cannot be converted yields an empty string, and anything
// executable in the input is stripped from the output.
func Render(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(Preprocess(text)), &buf); err != nil {
		return ""
	}

	return policy.Sanitize(buf.String())
}
