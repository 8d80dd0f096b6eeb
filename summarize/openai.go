package summarize

import (
	"context"
	"fmt"

	"github.com/masaoka108/ai-youtube-summary-api/model"
	"github.com/sashabaranov/go-openai"
)

// OpenAI is the alternative provider, selected with
// GENERATIVE_PROVIDER=openai.
type OpenAI struct {
	client    *openai.Client
	modelName string
}

func NewOpenAI(apiKey, modelName string) *OpenAI {
	if modelName == "" {
		modelName = openai.GPT4
	}

	return &OpenAI{
		client:    openai.NewClient(apiKey),
		modelName: modelName,
	}
}

func (o *OpenAI) Summarize(ctx context.Context, md model.VideoMetadata) (string, error) {
	return o.generate(ctx, SummaryPrompt(md))
}

func (o *OpenAI) Answer(ctx context.Context, question string, md model.VideoMetadata, summaryText string) (string, error) {
	return o.generate(ctx, AnswerPrompt(question, md, summaryText))
}

func (o *OpenAI) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", model.ErrGeneration)
	}

	return resp.Choices[len(resp.Choices)-1].Message.Content, nil
}
