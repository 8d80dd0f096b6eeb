package summarize

import (
	"context"
	"fmt"

	"github.com/masaoka108/ai-youtube-summary-api/model"
)

// Mock returns canned output in the shape the real prompts ask for. It
// backs the tests and the GENERATIVE_PROVIDER=mock dev mode.
type Mock struct {
	SummarizeErr error
	AnswerErr    error

	SummarizeCalled int
	AnswerCalled    int
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Summarize(_ context.Context, md model.VideoMetadata) (string, error) {
	m.SummarizeCalled++
	if m.SummarizeErr != nil {
		return "", m.SummarizeErr
	}

	return fmt.Sprintf(`# 全体の概要

「%s」の概要です。

# 主要なポイント

- ポイント1
- ポイント2
- ポイント3
- ポイント4
- ポイント5

# 結論

結論です。`, md.Title), nil
}

func (m *Mock) Answer(_ context.Context, question string, _ model.VideoMetadata, _ string) (string, error) {
	m.AnswerCalled++
	if m.AnswerErr != nil {
		return "", m.AnswerErr
	}

	return fmt.Sprintf("**回答 %d**: 「%s」についての回答です。\n\n- 詳細1\n- 詳細2", m.AnswerCalled, question), nil
}
