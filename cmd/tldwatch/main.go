// tldwatch summarizes a YouTube video from the command line and renders
// the result in the terminal. It runs the same pipeline as the HTTP
// service, without going through it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/masaoka108/ai-youtube-summary-api/fetch"
	"github.com/masaoka108/ai-youtube-summary-api/pipeline"
	"github.com/masaoka108/ai-youtube-summary-api/storage"
	"github.com/masaoka108/ai-youtube-summary-api/summarize"
	"github.com/muesli/termenv"
	"golang.org/x/exp/slog"
	"golang.org/x/term"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	question := flag.String("q", "", "follow-up question to ask about the video")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tldwatch [-q question] <youtube-url>")
		os.Exit(2)
	}
	url := flag.Arg(0)

	godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr))
	ctx := context.Background()

	youtubeKey := os.Getenv("YOUTUBE_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if youtubeKey == "" || geminiKey == "" {
		fmt.Fprintln(os.Stderr, "YOUTUBE_API_KEY and GEMINI_API_KEY must be set")
		os.Exit(1)
	}

	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(youtubeKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create youtube service: %v\n", err)
		os.Exit(1)
	}

	modelName := os.Getenv("GEMINI_MODEL")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	gemini, err := summarize.NewGemini(ctx, geminiKey, modelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create gemini client: %v\n", err)
		os.Exit(1)
	}
	defer gemini.Close()

	pl := pipeline.New(fetch.NewYoutube(ytClient), gemini, storage.NewMemorySessionRepository(), 30*time.Second, logger)

	session, err := pl.Submit(ctx, uuid.Nil, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "summarization failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n%s\n\n", session.Summary.Title, session.Summary.ThumbnailURL)
	printMarkdown(session.Summary.Text())

	if *question != "" {
		session, err = pl.Ask(ctx, session.ID, *question)
		if err != nil {
			fmt.Fprintf(os.Stderr, "question failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nQ: %s\n\n", session.QA.Question)
		printMarkdown(session.QA.Answer)
	}
}

func printMarkdown(content string) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
		glamour.WithColorProfile(termenv.EnvColorProfile()),
	)
	if err != nil {
		fmt.Println(content)
		return
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(rendered)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 10 {
		return 80
	}

	return width - 4
}
