package fetch

import (
	"context"
	"fmt"

	"github.com/masaoka108/ai-youtube-summary-api/model"
	"google.golang.org/api/youtube/v3"
)

type Youtube struct {
	client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{client: client}
}

// FetchMetadata looks up the snippet of a single video. One call, no
// retry. A video the catalog does not know yields model.ErrVideoNotFound,
// anything else that goes wrong wraps model.ErrTransport.
func (y *Youtube) FetchMetadata(ctx context.Context, id model.YoutubeVideoID) (model.VideoMetadata, error) {
	call := y.client.Videos.
		List([]string{"snippet"}).
		Id(string(id)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return model.VideoMetadata{}, fmt.Errorf("%w: %v", model.ErrTransport, err)
	}

	if len(response.Items) == 0 {
		return model.VideoMetadata{}, model.ErrVideoNotFound
	}

	item := response.Items[0]
	if item.Snippet == nil || item.Snippet.Title == "" {
		return model.VideoMetadata{}, fmt.Errorf("%w: response item has no snippet", model.ErrTransport)
	}

	maxres, hq := ThumbnailURLs(id)

	return model.VideoMetadata{
		Title:                item.Snippet.Title,
		Description:          item.Snippet.Description,
		ThumbnailURL:         maxres,
		FallbackThumbnailURL: hq,
	}, nil
}
