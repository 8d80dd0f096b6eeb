package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/masaoka108/ai-youtube-summary-api/fetch"
	"github.com/masaoka108/ai-youtube-summary-api/handler"
	"github.com/masaoka108/ai-youtube-summary-api/pipeline"
	"github.com/masaoka108/ai-youtube-summary-api/storage"
	"github.com/masaoka108/ai-youtube-summary-api/summarize"
	"github.com/rs/cors"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {

	ctx := context.Background()
	godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	youtubeKey, err := requireParam("YOUTUBE_API_KEY")
	if err != nil {
		logger.Error("missing configuration", err)
		os.Exit(1)
	}
	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(youtubeKey))
	if err != nil {
		logger.Error("unable to create youtube service", err)
		os.Exit(1)
	}
	yt := fetch.NewYoutube(ytClient)

	generator, closeGenerator, err := newGenerator(ctx, logger)
	if err != nil {
		logger.Error("unable to create generator", err)
		os.Exit(1)
	}
	defer closeGenerator()

	timeout, err := time.ParseDuration(getParam("REQUEST_TIMEOUT", "30s"))
	if err != nil {
		logger.Error("unable to parse request timeout", err)
		os.Exit(1)
	}

	sessions := storage.NewMemorySessionRepository()
	pl := pipeline.New(yt, generator, sessions, timeout, logger)

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil {
		logger.Error("invalid port", err)
		os.Exit(1)
	}
	srv := cors.Default().Handler(handler.NewServer(yt, pl, logger))
	go http.ListenAndServe(fmt.Sprintf(":%d", port), srv)
	logger.Info("http server started", slog.Int("port", port))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	logger.Info("service stopped")
}

func newGenerator(ctx context.Context, logger *slog.Logger) (summarize.Generator, func(), error) {
	provider := getParam("GENERATIVE_PROVIDER", "gemini")
	logger.Info("selected generative provider", slog.String("provider", provider))

	switch provider {
	case "openai":
		apiKey, err := requireParam("OPENAI_API_KEY")
		if err != nil {
			return nil, nil, err
		}
		return summarize.NewOpenAI(apiKey, getParam("OPENAI_MODEL", "")), func() {}, nil
	case "mock":
		return summarize.NewMock(), func() {}, nil
	case "gemini":
		apiKey, err := requireParam("GEMINI_API_KEY")
		if err != nil {
			return nil, nil, err
		}
		gemini, err := summarize.NewGemini(ctx, apiKey, getParam("GEMINI_MODEL", "gemini-1.5-flash"))
		if err != nil {
			return nil, nil, err
		}
		return gemini, func() { gemini.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown generative provider %q", provider)
	}
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}

func requireParam(param string) (string, error) {
	val, ok := os.LookupEnv(param)
	if !ok || val == "" {
		return "", fmt.Errorf("%s must be set", param)
	}
	return val, nil
}
