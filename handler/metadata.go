package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/masaoka108/ai-youtube-summary-api/fetch"
	"github.com/masaoka108/ai-youtube-summary-api/model"
	"golang.org/x/exp/slog"
)

// MetadataAPI proxies metadata lookups so the catalog credential stays on
// the server.
type MetadataAPI struct {
	metadata fetch.MetadataFetcher
	logger   *slog.Logger
}

func NewMetadataAPI(metadata fetch.MetadataFetcher, logger *slog.Logger) *MetadataAPI {
	return &MetadataAPI{
		metadata: metadata,
		logger:   logger,
	}
}

func (m *MetadataAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sub, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && sub == "":
		m.Get(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the metadata api", r.Method, sub))
	}
}

type metadataResponse struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Thumbnails  thumbnailsResponse `json:"thumbnails"`
}

type thumbnailsResponse struct {
	High   string `json:"high"`
	Maxres string `json:"maxres"`
}

func (m *MetadataAPI) Get(w http.ResponseWriter, r *http.Request) {
	videoID := r.URL.Query().Get("videoId")
	if videoID == "" {
		Error(w, http.StatusBadRequest, "missing video id", errors.New("videoId query parameter is required"))
		return
	}

	md, err := m.metadata.FetchMetadata(r.Context(), model.YoutubeVideoID(videoID))
	switch {
	case errors.Is(err, model.ErrVideoNotFound):
		Error(w, http.StatusNotFound, "video not found", err)
		return
	case err != nil:
		m.logger.Error("metadata fetch failed", err, slog.String("video_id", videoID))
		Error(w, http.StatusInternalServerError, "could not fetch video metadata", err)
		return
	}

	writeJSON(w, http.StatusOK, metadataResponse{
		Title:       md.Title,
		Description: md.Description,
		Thumbnails: thumbnailsResponse{
			High:   md.FallbackThumbnailURL,
			Maxres: md.ThumbnailURL,
		},
	})
}
