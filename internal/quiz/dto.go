package quiz

import (
	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
)

// QuestionDTO é a questão como o cliente a vê: sem a opção correta.
type QuestionDTO struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// AttemptStateDTO descreve a questão atual e o progresso de uma tentativa
// em andamento.
type AttemptStateDTO struct {
	AttemptID      uuid.UUID   `json:"attempt_id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	CurrentIndex   int         `json:"current_index"`
	TotalQuestions int         `json:"total_questions"`
	Question       QuestionDTO `json:"question"`
	SelectedOption *int        `json:"selected_option,omitempty"`
	Completed      bool        `json:"completed"`
}

// ChartDTO são os agregados prontos para gráfico, projeção pura do
// resultado.
type ChartDTO struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

type AttemptResultDTO struct {
	AttemptID uuid.UUID           `json:"attempt_id"`
	Title     string              `json:"title"`
	Result    *quizsession.Result `json:"result"`
	Chart     ChartDTO            `json:"chart"`
}

func attemptState(a *Attempt) *AttemptStateDTO {
	s := a.Session
	def := s.Definition()

	dto := &AttemptStateDTO{
		AttemptID:      a.ID,
		Title:          def.Title,
		Description:    def.Description,
		CurrentIndex:   s.CurrentIndex(),
		TotalQuestions: s.Len(),
		Question: QuestionDTO{
			Question: s.CurrentQuestion().Question,
			Options:  s.CurrentQuestion().Options,
		},
		Completed: s.Completed(),
	}

	if answer := s.Answer(s.CurrentIndex()); answer >= 0 {
		dto.SelectedOption = &answer
	}
	return dto
}

func attemptResult(a *Attempt) *AttemptResultDTO {
	res := a.Session.Result()
	return &AttemptResultDTO{
		AttemptID: a.ID,
		Title:     a.Session.Definition().Title,
		Result:    res,
		Chart: ChartDTO{
			Correct:   res.CorrectCount,
			Incorrect: len(res.IncorrectAnswers),
		},
	}
}
