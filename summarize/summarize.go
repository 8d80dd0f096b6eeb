// Package summarize talks to a generative-text service to produce video
// summaries and follow-up answers. All implementations make exactly one
// call per invocation and never retry.
package summarize

import (
	"context"
	"strings"

	"github.com/masaoka108/ai-youtube-summary-api/model"
)

type Generator interface {
	// Summarize produces the raw markdown summary for a video.
	Summarize(ctx context.Context, md model.VideoMetadata) (string, error)

	// Answer answers a question about a video, given its metadata and
	// the full text of the previously generated summary.
	Answer(ctx context.Context, question string, md model.VideoMetadata, summaryText string) (string, error)
}

// SplitSections splits raw generator output into its non-blank lines.
// Blank lines are dropped, not kept as empty entries, so a successful
// generation with non-empty text never yields an empty result.
func SplitSections(raw string) []string {
	var sections []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sections = append(sections, line)
		}
	}

	return sections
}
