package fetch_test

import (
	"testing"

	"github.com/masaoka108/ai-youtube-summary-api/fetch"
	"github.com/masaoka108/ai-youtube-summary-api/model"
	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		id   model.YoutubeVideoID
		ok   bool
	}{
		{
			name: "watch url",
			url:  "https://www.youtube.com/watch?v=ABC123",
			id:   "ABC123",
			ok:   true,
		},
		{
			name: "watch url with extra query params",
			url:  "https://www.youtube.com/watch?v=ABC123&t=30",
			id:   "ABC123",
			ok:   true,
		},
		{
			name: "short link",
			url:  "https://youtu.be/XYZ789",
			id:   "XYZ789",
			ok:   true,
		},
		{
			name: "short link with share params",
			url:  "https://youtu.be/XYZ789?si=tracking",
			id:   "XYZ789",
			ok:   true,
		},
		{
			name: "shorts url",
			url:  "https://youtube.com/shorts/QWE456",
			id:   "QWE456",
			ok:   true,
		},
		{
			name: "shorts url with fragment",
			url:  "https://www.youtube.com/shorts/QWE456#comments",
			id:   "QWE456",
			ok:   true,
		},
		{
			name: "unrecognized host",
			url:  "https://example.com/video",
			ok:   false,
		},
		{
			name: "youtube page without video",
			url:  "https://www.youtube.com/feed/subscriptions",
			ok:   false,
		},
		{
			name: "empty string",
			url:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := fetch.ExtractVideoID(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestThumbnailURLs(t *testing.T) {
	maxres, hq := fetch.ThumbnailURLs("ABC123")
	assert.Equal(t, "https://img.youtube.com/vi/ABC123/maxresdefault.jpg", maxres)
	assert.Equal(t, "https://img.youtube.com/vi/ABC123/hqdefault.jpg", hq)
}
