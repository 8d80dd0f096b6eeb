package fetch

import (
	"regexp"

	"github.com/masaoka108/ai-youtube-summary-api/model"
)

// Ordered; the first pattern that matches wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([^&\n?#]+)`),
}

// ExtractVideoID pulls the video identifier out of a YouTube URL. It
// accepts watch URLs, youtu.be short links and shorts URLs. The captured
// identifier is returned as-is, without further validation. ok is false
// when no pattern matches, which callers should treat as a user input
// error rather than a failure.
func ExtractVideoID(rawURL string) (id model.YoutubeVideoID, ok bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return model.YoutubeVideoID(m[1]), true
		}
	}

	return "", false
}
