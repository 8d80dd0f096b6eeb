package fetch

import (
	"context"
	"fmt"

	"github.com/masaoka108/ai-youtube-summary-api/model"
)

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, id model.YoutubeVideoID) (model.VideoMetadata, error)
}

const (
	thumbnailMaxResFormat = "https://img.youtube.com/vi/%s/maxresdefault.jpg"
	thumbnailHQFormat     = "https://img.youtube.com/vi/%s/hqdefault.jpg"
)

// ThumbnailURLs builds the two thumbnail tiers for a video. The maxres
// tier does not exist for every video, so clients should fall back to
// the hq tier when it fails to load.
func ThumbnailURLs(id model.YoutubeVideoID) (maxres, hq string) {
	return fmt.Sprintf(thumbnailMaxResFormat, id), fmt.Sprintf(thumbnailHQFormat, id)
}
