package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/masaoka108/ai-youtube-summary-api/model"
	"google.golang.org/api/option"
)

// Gemini generates text with the Google generative language API. This is
// the default provider.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (g *Gemini) Summarize(ctx context.Context, md model.VideoMetadata) (string, error) {
	return g.generate(ctx, SummaryPrompt(md))
}

func (g *Gemini) Answer(ctx context.Context, question string, md model.VideoMetadata, summaryText string) (string, error) {
	return g.generate(ctx, AnswerPrompt(question, md, summaryText))
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrGeneration, err)
	}

	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: empty response", model.ErrGeneration)
	}

	return text.String(), nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}
