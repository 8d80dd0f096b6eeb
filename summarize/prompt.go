package summarize

import (
	"fmt"

	"github.com/masaoka108/ai-youtube-summary-api/model"
)

// The two prompt templates are a contract with the renderer: the summary
// template pins the section markers, the five-item key-point list and the
// blank-line separation that downstream line splitting relies on. Changing
// their structure breaks rendering.

const summaryPromptFormat = `以下のYouTube動画の内容を要約してください：

タイトル: %s
説明: %s

要約のフォーマット:

# 全体の概要
(ここに1段落で概要を書いてください)

# 主要なポイント
- ポイント1
- ポイント2
- ポイント3
- ポイント4
- ポイント5

# 結論
(ここに結論を書いてください)

必ず各セクション間に空行を入れ、箇条書きの前後にも空行を入れてください。
日本語で出力してください。`

const answerPromptFormat = `以下のYouTube動画に関する質問に答えてください：

動画情報：
タイトル: %s
要約: %s

質問: %s

以下の形式で回答を作成してください：

1. まず、質問に対する直接的な回答を1-2文で
2. 続いて、詳細な説明を箇条書きで
3. 最後に、補足情報があれば追加

マークダウン形式を使用して回答を構造化してください：
- 重要なポイントは **太字** で
- 箇条書きには - を使用
- 必要に応じて ### で小見出しを使用

日本語で、わかりやすく具体的に回答してください。`

// SummaryPrompt builds the summarization prompt from the video title and
// description. Deterministic: same metadata, same prompt.
func SummaryPrompt(md model.VideoMetadata) string {
	return fmt.Sprintf(summaryPromptFormat, md.Title, md.Description)
}

// AnswerPrompt builds the question-answering prompt from the question,
// the video title and the full summary text.
func AnswerPrompt(question string, md model.VideoMetadata, summaryText string) string {
	return fmt.Sprintf(answerPromptFormat, md.Title, summaryText, question)
}
