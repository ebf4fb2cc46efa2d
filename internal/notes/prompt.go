package notes

import "fmt"

const systemPrompt = `
You are a writer of structured study notes for a learning application.

Rules:
1. Notes are split into sections, each with a "title" and a "content" body.
2. For programming topics, include runnable example code in a "code" field
   and name the language in a "language" field (python, javascript, java,
   go, c or cpp). Omit both fields for non-programming topics.
3. Content is didactic and self-contained; a student reads it without any
   other material at hand.
4. Always return pure, valid JSON with no text outside the JSON.

Expected JSON format:

[
  {"title": "<section title>", "content": "<section body>", "code": "<optional>", "language": "<optional>"}
]
`

var sectionsPerLength = map[string]int{
	"short":  3,
	"medium": 5,
	"long":   8,
}

const defaultLength = "medium"

func buildPrompt(req GenerateRequest) string {
	length := req.Length
	if _, ok := sectionsPerLength[length]; !ok {
		length = defaultLength
	}

	prompt := fmt.Sprintf(
		"Write study notes about %q with roughly %d sections.",
		req.Topic, sectionsPerLength[length],
	)
	if req.Focus != "" {
		prompt += fmt.Sprintf(" Give special attention to: %s.", req.Focus)
	}
	return prompt + " Follow the JSON format from the system prompt exactly."
}
