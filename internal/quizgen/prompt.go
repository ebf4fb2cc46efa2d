package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `
You are a generator of educational multiple-choice quizzes for a study application.

Rules:
1. Every question has exactly one correct answer.
2. Each question carries exactly 4 options, all plausible and of similar length and structure. Do not make the correct option stand out.
3. "correctOption" must repeat, verbatim, the text of exactly one element of "options".
4. Vary the question style: theoretical, applied, conceptual and analytical.
5. Never reveal the answer in the question text.
6. Always return pure, valid JSON with no text outside the JSON.

Expected JSON format:

[
  {
    "question": "<question text>",
    "options": ["...", "...", "...", "..."],
    "correctOption": "<verbatim copy of the correct option>"
  }
]

Difficulty guidance:
- easy: basic concepts or direct definitions.
- medium: application or interpretation of concepts.
- hard: analysis, deduction, correlation of ideas or calculations.
`

const (
	defaultNumQuestions = 5
	minNumQuestions     = 3
	maxNumQuestions     = 10
)

func clampNumQuestions(n int) int {
	if n <= 0 {
		return defaultNumQuestions
	}
	if n < minNumQuestions {
		return minNumQuestions
	}
	if n > maxNumQuestions {
		return maxNumQuestions
	}
	return n
}

func BuildTopicPrompt(req GenerateRequest) string {
	return fmt.Sprintf(
		"Generate %d multiple-choice questions about the topic %q with difficulty %q. "+
			"Follow the JSON format from the system prompt exactly.",
		clampNumQuestions(req.NumQuestions), req.Topic, req.Difficulty,
	)
}

func BuildFlashcardsPrompt(req FromFlashcardsRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions derived from the study flashcards below. ", clampNumQuestions(len(req.Flashcards)))
	b.WriteString("Questions must test the same knowledge the cards cover, without copying a card verbatim. ")
	b.WriteString("Follow the JSON format from the system prompt exactly.\n\nFlashcards:\n")
	for _, c := range req.Flashcards {
		fmt.Fprintf(&b, "- Q: %s\n  A: %s\n", c.Question, c.Answer)
	}
	return b.String()
}

func BuildNotesPrompt(req FromNotesRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions covering the study notes below. ", defaultNumQuestions)
	b.WriteString("Follow the JSON format from the system prompt exactly.\n\nNotes:\n")
	for _, n := range req.Notes {
		fmt.Fprintf(&b, "## %s\n%s\n", n.Title, n.Content)
	}
	return b.String()
}
