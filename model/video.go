package model

import "strings"

type YoutubeVideoID string

// VideoMetadata is the snippet data for a single video, as returned by the
// YouTube Data API. It is validated at the client boundary and read-only
// afterwards.
type VideoMetadata struct {
	Title       string
	Description string

	// ThumbnailURL points at the maxresdefault tier. Not every video has
	// one, so FallbackThumbnailURL carries the hqdefault tier for clients
	// to fall back to.
	ThumbnailURL         string
	FallbackThumbnailURL string
}

// Summary is the generated summary of a video, split into the non-blank
// lines of the raw generator output. Sections is never empty; a session
// without a summary has no Summary at all.
type Summary struct {
	Title        string
	ThumbnailURL string
	Sections     []string
}

func (s Summary) Text() string {
	return strings.Join(s.Sections, "\n")
}

// QAExchange holds the current question and its generated answer. A new
// answer replaces the previous one.
type QAExchange struct {
	Question string
	Answer   string
}
