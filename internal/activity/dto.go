package activity

import (
	"github.com/studyforge/studyforge-lambda/internal/flashcards"
	"github.com/studyforge/studyforge-lambda/internal/gform"
	"github.com/studyforge/studyforge-lambda/internal/notes"
	util "github.com/studyforge/studyforge-lambda/internal/utils"
)

type QuizStats struct {
	TotalAttempts     int    `json:"total_attempts"`
	AveragePercentage int    `json:"average_percentage"`
	BestTitle         string `json:"best_title,omitempty"`
	BestPercentage    int    `json:"best_percentage"`
	WorstTitle        string `json:"worst_title,omitempty"`
	WorstPercentage   int    `json:"worst_percentage"`
}

type AttemptSummary struct {
	Title       string             `json:"title"`
	Percentage  int                `json:"percentage"`
	Correct     int                `json:"correct"`
	Total       int                `json:"total"`
	CompletedAt util.LocalDateTime `json:"completed_at"`
}

type DashboardResponse struct {
	Stats          QuizStats                  `json:"stats"`
	Flashcards     []flashcards.SetSummaryDTO `json:"flashcards"`
	Notes          []notes.SetSummaryDTO      `json:"notes"`
	QuizPdfs       []*gform.QuizPdf           `json:"quiz_pdfs"`
	RecentAttempts []AttemptSummary           `json:"recent_attempts"`
}
