package summarize_test

import (
	"strings"
	"testing"

	"github.com/masaoka108/ai-youtube-summary-api/model"
	"github.com/masaoka108/ai-youtube-summary-api/summarize"
	"github.com/stretchr/testify/assert"
)

func TestSummaryPrompt(t *testing.T) {
	md := model.VideoMetadata{
		Title:       "Goのチュートリアル",
		Description: "ゴルーチンとチャネルの解説",
	}

	prompt := summarize.SummaryPrompt(md)

	assert.Contains(t, prompt, "タイトル: Goのチュートリアル")
	assert.Contains(t, prompt, "説明: ゴルーチンとチャネルの解説")
	assert.Contains(t, prompt, "# 全体の概要")
	assert.Contains(t, prompt, "# 主要なポイント")
	assert.Contains(t, prompt, "# 結論")
	assert.Contains(t, prompt, "日本語で出力してください")
	assert.Equal(t, 5, strings.Count(prompt, "- ポイント"), "key point list must have exactly five items")

	assert.Equal(t, prompt, summarize.SummaryPrompt(md), "prompt must be deterministic")
}

func TestAnswerPrompt(t *testing.T) {
	md := model.VideoMetadata{Title: "Goのチュートリアル"}
	summaryText := "# 全体の概要\nGoの入門動画です。"

	prompt := summarize.AnswerPrompt("ゴルーチンとは何ですか？", md, summaryText)

	assert.Contains(t, prompt, "質問: ゴルーチンとは何ですか？")
	assert.Contains(t, prompt, "タイトル: Goのチュートリアル")
	assert.Contains(t, prompt, summaryText)
	assert.Contains(t, prompt, "**太字**")
	assert.Contains(t, prompt, "###")
	assert.Contains(t, prompt, "日本語で")
}

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "blank lines dropped",
			raw:  "# 全体の概要\n\n概要です。\n\n\n# 結論\n結論です。\n",
			want: []string{"# 全体の概要", "概要です。", "# 結論", "結論です。"},
		},
		{
			name: "whitespace-only lines dropped",
			raw:  "一行目\n   \n\t\n二行目",
			want: []string{"一行目", "二行目"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace-only input",
			raw:  "  \n\n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarize.SplitSections(tt.raw))
		})
	}
}
