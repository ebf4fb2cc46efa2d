package flashcards

import "fmt"

const systemPrompt = `
You are a generator of study flashcards for a learning application.

Rules:
1. Each flashcard has a "question" (front) and an "answer" (back).
2. Questions are short and specific; answers are complete but concise (at most three sentences).
3. Cover distinct aspects of the topic; never repeat a card.
4. Always return pure, valid JSON with no text outside the JSON.

Expected JSON format:

[
  {"question": "<front of the card>", "answer": "<back of the card>"}
]
`

const (
	defaultNumCards = 5
	maxNumCards     = 20
)

func buildPrompt(req GenerateRequest) string {
	n := req.NumCards
	if n <= 0 {
		n = defaultNumCards
	}
	if n > maxNumCards {
		n = maxNumCards
	}

	return fmt.Sprintf(
		"Generate %d flashcards about the topic %q within the subject %q. "+
			"Follow the JSON format from the system prompt exactly.",
		n, req.Topic, req.Subject,
	)
}
